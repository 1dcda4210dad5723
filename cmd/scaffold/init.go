package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
)

func initCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Publish the default stubs into the project",
		Long: `Init copies the built-in templates into the project's stub directory
so they can be customized. Existing stubs are kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			cfg, err := gen.NewConfig(s.Options()...)
			if err != nil {
				return err
			}
			dir := filepath.Join(cfg.Root, cfg.StubsDir)
			res, err := gen.PublishStubs(dir, force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Stubs published to %s\n", dir)
			for _, p := range res.Written {
				fmt.Fprintf(out, "  %s %s\n", ok.Sprint("✓"), p)
			}
			for _, p := range res.Preserved {
				fmt.Fprintf(out, "  %s %s (preserved)\n", warn.Sprint("-"), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing stubs")
	return cmd
}

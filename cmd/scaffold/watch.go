package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/trigger"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Generate scaffolds for newly created model files",
		Long: `Watch observes the models directory and handles every new model
class file as a successful creation event.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, closeDB, err := a.scaffolder()
			if err != nil {
				return err
			}
			defer closeDB()

			cfg := sc.Config()
			w, err := trigger.NewWatcher(filepath.Join(cfg.Root, cfg.ModelsDir), trigger.NewListener(sc, a.log), a.log)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
)

func generateCmd(a *app) *cobra.Command {
	var (
		table  string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "generate <Model>",
		Short: "Generate the CRUD artifacts of a model",
		Long: `Generate introspects the model's table and writes every artifact.
The table defaults to the plural snake case of the model name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, closeDB, err := a.scaffolder(gen.WithDryRun(dryRun))
			if err != nil {
				return err
			}
			defer closeDB()

			res, err := sc.Generate(cmd.Context(), args[0], table)
			if res != nil {
				printResult(cmd.OutOrStdout(), res)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table name (default derived from the model)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan the artifacts without writing")
	return cmd
}

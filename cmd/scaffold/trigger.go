package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/trigger"
)

func triggerCmd(a *app) *cobra.Command {
	var failed bool
	cmd := &cobra.Command{
		Use:   "trigger <Model>",
		Short: "Handle a model creation event",
		Long: `Trigger behaves like the model generator hook: a successful event
generates the scaffold, a failed event or a missing table does nothing.
Generation errors are logged and do not fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, closeDB, err := a.scaffolder()
			if err != nil {
				return err
			}
			defer closeDB()

			rep := trigger.NewListener(sc, a.log).Handle(cmd.Context(), trigger.Event{Model: args[0], Success: !failed})
			if rep.Result != nil {
				printResult(cmd.OutOrStdout(), rep.Result)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&failed, "failed", false, "mark the event as unsuccessful")
	return cmd
}

func outcomeLabel(o trigger.Outcome) string {
	switch o {
	case trigger.Generated:
		return ok.Sprint(string(o))
	case trigger.Skipped:
		return warn.Sprint(string(o))
	default:
		return bad.Sprint(string(o))
	}
}

func reportLine(rep trigger.Report) string {
	line := fmt.Sprintf("%s %s", outcomeLabel(rep.Outcome), rep.Model)
	if rep.Reason != "" {
		line += " (" + rep.Reason + ")"
	}
	return line
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/trigger"
)

var (
	ok   = color.New(color.FgGreen)
	warn = color.New(color.FgYellow)
	bad  = color.New(color.FgRed)
	bold = color.New(color.Bold)
)

// printResult writes the summary of a generation run.
func printResult(w io.Writer, res *gen.Result) {
	title := "Scaffold"
	if res.DryRun {
		title = "Scaffold (dry run)"
	}
	fmt.Fprintf(w, "%s %s -> %s\n", bold.Sprint(title), res.Model, res.Table)

	if len(res.Relations) > 0 {
		fmt.Fprintln(w, "Relations:")
		for _, rel := range res.Relations {
			fmt.Fprintf(w, "  %s %s(%s) via %s\n", rel.Kind, rel.Name, rel.Model, rel.LocalKey)
		}
	}
	for _, m := range res.ModelPatch {
		fmt.Fprintf(w, "  %s model %s\n", ok.Sprint("~"), m)
	}

	files := res.Written
	if res.DryRun {
		files = res.Planned
	}
	for _, p := range files {
		mark := ok.Sprint("✓")
		if res.DryRun {
			mark = warn.Sprint("?")
		}
		fmt.Fprintf(w, "  %s %s\n", mark, p)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "  %s %s (%s)\n", warn.Sprint("-"), s.Path, s.Reason)
	}
	for _, msg := range res.Warnings {
		fmt.Fprintf(w, "  %s %s\n", warn.Sprint("!"), msg)
	}
	if res.RoutesAdded {
		fmt.Fprintf(w, "  %s routes registered\n", ok.Sprint("✓"))
	}
	if !res.DryRun {
		fmt.Fprintf(w, "%d files, %d bytes\n", res.Metrics.FilesWritten, res.Metrics.TotalBytes)
	}
}

func printReport(w io.Writer, rep trigger.Report) {
	fmt.Fprintln(w, reportLine(rep))
}

package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scriptview"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flagWorkers int

var reportCmd = &cobra.Command{
	Use:   "report [file...]",
	Short: "Print the full analysis for each script",
	Long:  "Report runs classification, validation, metadata extraction, and statistics. Files are analyzed concurrently; output keeps the argument order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(args)
		if err != nil {
			return err
		}

		texts := make([]string, len(inputs))
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(flagWorkers)

		for i := range inputs {
			g.Go(func() error {
				report, err := scriptview.Analyze(inputs[i].Data)
				if err != nil {
					return fmt.Errorf("%s: %w", inputs[i].Name, err)
				}
				texts[i] = renderReport(inputs[i].Name, report)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for _, text := range texts {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&flagWorkers, "workers", 4, "maximum concurrent analyses")
}

// renderReport formats one script's full analysis.
func renderReport(name string, report *scriptview.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s ===\n", name)
	fmt.Fprintf(&sb, "%s\n", report)

	if report.Shebang != nil {
		fmt.Fprintf(&sb, "Interpreter: %s", report.Shebang.Interpreter)
		if len(report.Shebang.Args) > 0 {
			fmt.Fprintf(&sb, " %s", strings.Join(report.Shebang.Args, " "))
		}
		sb.WriteString("\n")
	}

	if report.Valid() {
		sb.WriteString("Validation: ok\n")
	} else {
		fmt.Fprintf(&sb, "Validation: %s\n", report.Fault)
	}

	fmt.Fprintf(&sb, "Metadata:\n%s", renderMeta(report.Metadata))
	return sb.String()
}

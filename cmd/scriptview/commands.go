package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scriptview"
	"github.com/fwojciec/scriptview/bubbletea"
	"github.com/fwojciec/scriptview/chroma"
	"github.com/fwojciec/scriptview/exec"
	"github.com/fwojciec/scriptview/lipgloss"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file...]",
	Short: "Detect the script language",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(args)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			report, err := scriptview.Analyze(in.Data)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", in.Name, report.Type)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check structural soundness",
	Long:  "Validate runs quote, bracket, shebang, and keyword-balance checks. The verdict is advisory, not a correctness proof.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(args)
		if err != nil {
			return err
		}
		var failed int
		for _, in := range inputs {
			report, err := scriptview.Analyze(in.Data)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			if report.Valid() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", in.Name)
			} else {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", in.Name, report.Fault)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d script(s) failed validation", failed)
		}
		return nil
	},
}

var metaCmd = &cobra.Command{
	Use:   "meta [file...]",
	Short: "Extract header metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(args)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			report, err := scriptview.Analyze(in.Data)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s\n", in.Name, renderMeta(report.Metadata))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Count code, comment, and blank lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := gatherInputs(args)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			report, err := scriptview.Analyze(in.Data)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s\n", in.Name, report)
		}
		return nil
	},
}

var (
	flagChroma bool
	flagView   bool
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Render the script with terminal colors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := gatherOne(args)
		if err != nil {
			return err
		}
		report, err := scriptview.Analyze(in.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}

		scheme, ok := scriptview.ParseScheme(flagScheme)
		if !ok {
			return fmt.Errorf("unknown scheme %q", flagScheme)
		}

		var tokenizer scriptview.Tokenizer = scriptview.NewScanner()
		if flagChroma {
			tokenizer = chroma.NewTokenizer(report.Type)
		}

		app := &App{
			Tokenizer: tokenizer,
			Renderer:  lipgloss.NewRenderer(lipgloss.ThemeFor(scheme)),
			Viewer:    bubbletea.NewViewer(),
			Out:       cmd.OutOrStdout(),
		}
		title := fmt.Sprintf("%s (%s)", in.Name, report.Type)
		return app.Highlight(cmd.Context(), title, string(in.Data), flagView)
	},
}

func init() {
	highlightCmd.Flags().BoolVar(&flagChroma, "chroma", false, "use chroma's per-language lexers instead of the built-in scanner")
	highlightCmd.Flags().BoolVar(&flagView, "view", false, "page through the script in a TUI")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available highlight themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i := 0; i < lipgloss.ThemeCount(); i++ {
			name, _ := lipgloss.ThemeName(i)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name)
		}
		return nil
	},
}

var flagForce bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run the script through its shebang interpreter",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := gatherOne(args)
		if err != nil {
			return err
		}
		app := &App{
			Runner: &exec.Runner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		}
		return app.RunScript(cmd.Context(), string(in.Data), flagForce)
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagForce, "force", false, "skip the pre-execution validation gate")
}

// renderMeta formats metadata entries one per line, matching the
// "Field: value" form they were written in.
func renderMeta(entries []scriptview.MetadataEntry) string {
	if len(entries) == 0 {
		return "No metadata found"
	}
	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s", entry.Field, entry.Value)
	}
	return sb.String()
}

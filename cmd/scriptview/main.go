// Command scriptview inspects, validates, and previews package install
// scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// ErrNoInput is returned when no script is provided.
var ErrNoInput = errors.New("no input: pipe a script or provide file paths")

var flagScheme string

var rootCmd = &cobra.Command{
	Use:           "scriptview",
	Short:         "Inspect, validate, and preview package install scripts",
	Long:          "Scriptview classifies shell, Python, Perl, and Ruby scripts, checks their structural soundness, extracts header metadata, and renders them with terminal colors.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScheme, "scheme", "default", "highlight scheme: nano|vim|default")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// input is one script to analyze, read from a file or stdin.
type input struct {
	Name string
	Data []byte
}

// gatherInputs reads the named files, or stdin when no paths are given
// and stdin is a pipe.
func gatherInputs(paths []string) ([]input, error) {
	if len(paths) == 0 {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return nil, fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, ErrNoInput
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []input{{Name: "stdin", Data: data}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{Name: path, Data: data})
	}
	return inputs, nil
}

// gatherOne reads exactly one script for commands that cannot batch.
func gatherOne(paths []string) (input, error) {
	inputs, err := gatherInputs(paths)
	if err != nil {
		return input{}, err
	}
	return inputs[0], nil
}

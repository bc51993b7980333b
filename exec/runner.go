// Package exec runs scripts through the interpreter named by their
// shebang. The analysis core only decides what interpreter to use and
// whether a script looks runnable; this package owns the process
// lifecycle.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/fwojciec/scriptview"
)

// Compile-time interface verification.
var _ scriptview.Runner = (*Runner)(nil)

// DefaultInterpreter is used for scripts without a shebang.
const DefaultInterpreter = "/bin/sh"

// ErrNotRunnable is returned by Check when a script fails the
// pre-execution gate.
var ErrNotRunnable = errors.New("exec: script is not runnable")

// Runner spawns a script's interpreter and feeds the script text to its
// standard input.
type Runner struct {
	Stdout io.Writer // nil discards interpreter output
	Stderr io.Writer // nil discards interpreter errors
}

// NewRunner creates a runner that discards interpreter output.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes script and returns the interpreter's exit code. A
// non-zero exit from the script is not an error; failing to spawn the
// interpreter is.
func (r *Runner) Run(ctx context.Context, script string) (int, error) {
	interpreter := DefaultInterpreter
	var args []string
	if sb, ok := scriptview.ParseShebang(script, scriptview.MaxShebangArgs); ok {
		interpreter = sb.Interpreter
		args = sb.Args
	}

	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("exec: running %s: %w", interpreter, err)
	}
	return 0, nil
}

// Check gates execution: the script must be non-empty, carry a
// well-formed shebang, and pass structural validation for its type.
// The verdict is advisory; the host may still run a failing script
// explicitly.
func Check(script string) error {
	if script == "" {
		return fmt.Errorf("%w: empty script", ErrNotRunnable)
	}

	sb, ok := scriptview.ParseShebang(script, scriptview.MaxShebangArgs)
	if !ok {
		return fmt.Errorf("%w: missing shebang", ErrNotRunnable)
	}
	if strings.ContainsRune(sb.Interpreter, 0) {
		return fmt.Errorf("%w: interpreter path contains NUL", ErrNotRunnable)
	}

	if err := scriptview.Validate(script, scriptview.Classify(script)); err != nil {
		return fmt.Errorf("%w: %s", ErrNotRunnable, err)
	}
	return nil
}

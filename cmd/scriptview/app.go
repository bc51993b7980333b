package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/scriptview"
	"github.com/fwojciec/scriptview/exec"
)

// App holds the collaborators the commands run against, so tests can
// substitute mocks.
type App struct {
	Tokenizer scriptview.Tokenizer
	Renderer  scriptview.Renderer
	Viewer    scriptview.Viewer
	Runner    scriptview.Runner
	Out       io.Writer
}

// Highlight tokenizes and renders source, then either pages it in the
// viewer or writes it to Out.
func (a *App) Highlight(ctx context.Context, title, source string, view bool) error {
	rendered := a.Renderer.Render(a.Tokenizer.ScanLines(source))
	if view {
		return a.Viewer.View(ctx, title, rendered)
	}
	_, err := io.WriteString(a.Out, rendered)
	return err
}

// RunScript executes script through its shebang interpreter. Unless
// force is set, scripts that fail the pre-execution gate are refused.
func (a *App) RunScript(ctx context.Context, script string, force bool) error {
	if !force {
		if err := exec.Check(script); err != nil {
			return fmt.Errorf("%s (use --force to run anyway)", err)
		}
	}

	code, err := a.Runner.Run(ctx, script)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("script exited with status %d", code)
	}
	return nil
}

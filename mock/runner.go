package mock

import (
	"context"

	"github.com/fwojciec/scriptview"
)

// Compile-time interface verification.
var _ scriptview.Runner = (*Runner)(nil)

// Runner is a mock implementation of scriptview.Runner.
type Runner struct {
	RunFn func(ctx context.Context, script string) (int, error)
}

func (r *Runner) Run(ctx context.Context, script string) (int, error) {
	return r.RunFn(ctx, script)
}

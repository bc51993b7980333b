package mock

import (
	"context"

	"github.com/fwojciec/scriptview"
)

// Compile-time interface verification.
var _ scriptview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of scriptview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, title, content string) error
}

func (v *Viewer) View(ctx context.Context, title, content string) error {
	return v.ViewFn(ctx, title, content)
}

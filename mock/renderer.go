package mock

import "github.com/fwojciec/scriptview"

// Compile-time interface verification.
var _ scriptview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of scriptview.Renderer.
type Renderer struct {
	RenderFn func(lines [][]scriptview.Span) string
}

func (r *Renderer) Render(lines [][]scriptview.Span) string {
	return r.RenderFn(lines)
}

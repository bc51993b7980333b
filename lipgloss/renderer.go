package lipgloss

import (
	"io"
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scriptview"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ scriptview.Renderer = (*Renderer)(nil)

// Renderer serializes highlighted spans into ANSI-colored text using
// Lipgloss styles derived from a theme's palette.
type Renderer struct {
	styles map[scriptview.Category]lipglosslib.Style
}

// NewRenderer creates a renderer for the given theme, detecting the
// color profile from the environment.
func NewRenderer(theme *Theme) *Renderer {
	return newRenderer(theme, lipglosslib.DefaultRenderer())
}

// NewRendererWithProfile creates a renderer with an explicit termenv
// color profile. Tests use this to force true color regardless of the
// environment.
func NewRendererWithProfile(theme *Theme, profile termenv.Profile) *Renderer {
	lr := lipglosslib.NewRenderer(io.Discard)
	lr.SetColorProfile(profile)
	return newRenderer(theme, lr)
}

func newRenderer(theme *Theme, lr *lipglosslib.Renderer) *Renderer {
	palette := theme.Palette()
	styles := make(map[scriptview.Category]lipglosslib.Style)

	for _, category := range []scriptview.Category{
		scriptview.Plain, scriptview.Comment, scriptview.StringLit,
		scriptview.Variable, scriptview.Keyword, scriptview.Operator,
	} {
		style := lr.NewStyle()
		if color := palette.Color(category); color != "" {
			style = style.Foreground(lipglosslib.Color(color))
		}
		styles[category] = style
	}

	return &Renderer{styles: styles}
}

// Render serializes per-line spans into colored text. Each line ends
// with a newline; uncolored span text passes through unchanged, so
// stripping the escape sequences reproduces the source lines.
func (r *Renderer) Render(lines [][]scriptview.Span) string {
	var sb strings.Builder
	for _, line := range lines {
		for _, span := range line {
			sb.WriteString(r.styles[span.Category].Render(span.Text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Package lipgloss provides highlight themes and an ANSI span renderer
// built on the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/scriptview"

// Compile-time interface verification.
var _ scriptview.Theme = (*Theme)(nil)

// Theme maps span categories to colors for one highlight scheme.
type Theme struct {
	name    string
	palette scriptview.Palette
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() scriptview.Palette {
	return t.palette
}

// NanoTheme uses muted colors, approximating nano's syntax defaults.
func NanoTheme() *Theme {
	return &Theme{
		name: "nano",
		palette: scriptview.Palette{
			Comment:  "#40a02b", // green
			String:   "#df8e1d", // yellow
			Keyword:  "#1e66f5", // blue
			Variable: "#179299", // teal
			Operator: "#8839ef", // magenta
		},
	}
}

// VimTheme uses bright colors, approximating vim's bold defaults.
func VimTheme() *Theme {
	return &Theme{
		name: "vim",
		palette: scriptview.Palette{
			Comment:  "#a6e3a1", // bright green
			String:   "#f9e2af", // bright yellow
			Keyword:  "#89b4fa", // bright blue
			Variable: "#94e2d5", // bright teal
			Operator: "#cba6f7", // bright magenta
		},
	}
}

// DefaultTheme returns the theme used when no scheme is requested.
// It shares the nano palette.
func DefaultTheme() *Theme {
	t := NanoTheme()
	t.name = "default"
	return t
}

// ThemeFor returns the theme for a highlight scheme.
func ThemeFor(scheme scriptview.Scheme) *Theme {
	switch scheme {
	case SchemeNano:
		return NanoTheme()
	case SchemeVim:
		return VimTheme()
	default:
		return DefaultTheme()
	}
}

// Scheme aliases, so callers of this package rarely need to import the
// root package just to name a scheme.
const (
	SchemeNano    = scriptview.SchemeNano
	SchemeVim     = scriptview.SchemeVim
	SchemeDefault = scriptview.SchemeDefault
)

// themeOrder fixes the discovery indices: nano, vim, default.
var themeOrder = []scriptview.Scheme{SchemeNano, SchemeVim, SchemeDefault}

// ThemeCount returns the number of available themes.
func ThemeCount() int {
	return len(themeOrder)
}

// ThemeName returns the name of the theme at index, or ok=false when
// the index is out of range.
func ThemeName(index int) (string, bool) {
	if index < 0 || index >= len(themeOrder) {
		return "", false
	}
	return ThemeFor(themeOrder[index]).Name(), true
}

package scriptview

// Palette assigns a terminal color to each span category. Colors are
// hex strings in "#RRGGBB" format; an empty string means the terminal
// default (no styling).
type Palette struct {
	Comment  string
	String   string
	Variable string
	Keyword  string
	Operator string
	Plain    string
}

// Color returns the palette color for a category.
func (p Palette) Color(c Category) string {
	switch c {
	case Comment:
		return p.Comment
	case StringLit:
		return p.String
	case Variable:
		return p.Variable
	case Keyword:
		return p.Keyword
	case Operator:
		return p.Operator
	default:
		return p.Plain
	}
}

// Theme provides a palette for rendering highlighted scripts.
// Different implementations can provide scheme variants.
type Theme interface {
	Name() string
	Palette() Palette
}

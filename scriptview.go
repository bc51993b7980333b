// Package scriptview analyzes short, untrusted script texts on behalf of
// a package manager that needs to preview, validate, and run embedded
// install scripts. It classifies a script's language, judges whether the
// text looks structurally sound enough to hand to an interpreter,
// extracts human-authored header metadata, counts line statistics, and
// tokenizes the text for colored terminal display.
//
// Everything in this package is a pure function of its input: no state
// is shared between calls and concurrent use requires no synchronization.
package scriptview

import "context"

// ScriptType identifies the language a script appears to be written in.
type ScriptType int

// Script types, in classification priority order.
const (
	Shell ScriptType = iota
	Python
	Perl
	Ruby
	Unknown
)

// String returns the lowercase name of the script type.
func (t ScriptType) String() string {
	switch t {
	case Shell:
		return "shell"
	case Python:
		return "python"
	case Perl:
		return "perl"
	case Ruby:
		return "ruby"
	default:
		return "unknown"
	}
}

// Scheme selects a highlight color scheme. It affects only rendering
// intensity, never tokenization.
type Scheme int

// Available highlight schemes.
const (
	SchemeNano Scheme = iota
	SchemeVim
	SchemeDefault
)

// String returns the lowercase name of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeNano:
		return "nano"
	case SchemeVim:
		return "vim"
	default:
		return "default"
	}
}

// ParseScheme returns the scheme with the given name,
// or ok=false if the name is not recognized.
func ParseScheme(name string) (Scheme, bool) {
	switch name {
	case "nano":
		return SchemeNano, true
	case "vim":
		return SchemeVim, true
	case "default":
		return SchemeDefault, true
	default:
		return SchemeDefault, false
	}
}

// Category is the semantic class assigned to a span of highlighted text.
type Category int

// Span categories.
const (
	Plain Category = iota
	Comment
	StringLit
	Variable
	Keyword
	Operator
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Comment:
		return "comment"
	case StringLit:
		return "string"
	case Variable:
		return "variable"
	case Keyword:
		return "keyword"
	case Operator:
		return "operator"
	default:
		return "plain"
	}
}

// Span is a contiguous slice of a line tagged with a category.
// Concatenating the Text of all spans for a line reproduces the
// original line exactly.
type Span struct {
	Text     string
	Category Category
}

// Shebang holds the interpreter path and arguments parsed from a
// script's first line.
type Shebang struct {
	Interpreter string
	Args        []string
}

// MetadataEntry is a single recognized field extracted from a script's
// comment header.
type MetadataEntry struct {
	Field string
	Value string
}

// Stats summarizes line and character counts for a script.
// CodeLines + CommentLines + BlankLines always equals TotalLines.
type Stats struct {
	TotalLines   int
	CodeLines    int
	CommentLines int
	BlankLines   int
	TotalChars   int
}

// Tokenizer splits script text into categorized spans, one slice per line.
type Tokenizer interface {
	// ScanLines tokenizes source into per-line spans. The spans of each
	// line losslessly partition that line's text.
	ScanLines(source string) [][]Span
}

// Renderer serializes per-line spans into a displayable string.
type Renderer interface {
	Render(lines [][]Span) string
}

// Viewer displays rendered script content and blocks until dismissed.
type Viewer interface {
	View(ctx context.Context, title, content string) error
}

// Runner executes a script through the interpreter named by its shebang.
// The core never spawns processes itself; it only supplies the
// interpreter and script text to a Runner.
type Runner interface {
	// Run executes script and returns its exit code.
	Run(ctx context.Context, script string) (int, error)
}

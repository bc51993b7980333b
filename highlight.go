package scriptview

import (
	"strings"
	"sync"
	"unicode"
)

// shellKeywords is the fixed vocabulary of words highlighted as
// keywords. The set is constant; it is built once on first use.
var shellKeywords = sync.OnceValue(func() map[string]struct{} {
	words := []string{
		"if", "then", "else", "elif", "fi",
		"for", "while", "until", "do", "done",
		"case", "esac", "function", "return",
		"local", "export", "declare", "readonly",
		"echo", "printf", "read", "test", "true", "false",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
})

// Scanner is the built-in shell-biased tokenizer. Scripts of other
// types are tokenized with the same ruleset, which degrades gracefully
// rather than switching grammars per language.
type Scanner struct{}

// Compile-time interface verification.
var _ Tokenizer = (*Scanner)(nil)

// NewScanner creates the built-in tokenizer.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanLines tokenizes source into per-line spans.
func (s *Scanner) ScanLines(source string) [][]Span {
	return Scan(source)
}

// Scan tokenizes each line of text independently and returns the
// per-line spans.
func Scan(text string) [][]Span {
	lines := splitLines(text)
	spans := make([][]Span, len(lines))
	for i, line := range lines {
		spans[i] = ScanLine(line)
	}
	return spans
}

// ScanLine tokenizes a single line left to right in one pass.
// Concatenating the resulting span texts reproduces line exactly.
func ScanLine(line string) []Span {
	runes := []rune(line)
	var spans []Span

	for i := 0; i < len(runes); {
		ch := runes[i]
		switch {
		case ch == '#':
			// Remainder of the line is one comment span.
			spans = append(spans, Span{Text: string(runes[i:]), Category: Comment})
			i = len(runes)

		case ch == '"' || ch == '\'':
			start := i
			i = scanString(runes, i)
			spans = append(spans, Span{Text: string(runes[start:i]), Category: StringLit})

		case ch == '$':
			start := i
			i++
			for i < len(runes) && isVariableRune(runes[i]) {
				i++
			}
			spans = append(spans, Span{Text: string(runes[start:i]), Category: Variable})

		case unicode.IsLetter(ch):
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			category := Plain
			if _, ok := shellKeywords()[word]; ok {
				category = Keyword
			}
			spans = append(spans, Span{Text: word, Category: category})

		case strings.ContainsRune("=<>!&|", ch):
			spans = append(spans, Span{Text: string(ch), Category: Operator})
			i++

		default:
			spans = append(spans, Span{Text: string(ch), Category: Plain})
			i++
		}
	}

	return spans
}

// scanString consumes a quoted string starting at the opening quote and
// returns the index past the closing quote. Backslash escapes keep both
// the backslash and the escaped character inside the span. An
// unterminated string extends to end of line.
func scanString(runes []rune, start int) int {
	quote := runes[start]
	i := start + 1
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			i += 2
			continue
		}
		if runes[i] == quote {
			return i + 1
		}
		i++
	}
	return i
}

func isVariableRune(ch rune) bool {
	return isWordRune(ch) || ch == '{' || ch == '}'
}

func isWordRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

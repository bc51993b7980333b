package scriptview

import (
	"fmt"
	"strings"
)

// ValidationReason identifies which structural check a script failed.
type ValidationReason string

// Validation failure reasons.
const (
	ReasonUnbalancedQuotes   ValidationReason = "unbalanced_quotes"
	ReasonUnbalancedBrackets ValidationReason = "unbalanced_brackets"
	ReasonMalformedShebang   ValidationReason = "malformed_shebang"
	ReasonStructuralMismatch ValidationReason = "structural_mismatch"
)

// ValidationError describes a single structural problem found in a
// script. Validation is advisory: a passing script is not certified
// correct, and a failing one may still run.
type ValidationError struct {
	Reason ValidationReason
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("script failed %s check: %s", e.Reason, e.Detail)
}

// Validate reports whether text looks structurally sound for the given
// script type. It returns nil when every check passes, or a
// *ValidationError naming the first failed check. The checks are coarse
// balance heuristics, not a parse.
func Validate(text string, typ ScriptType) error {
	if err := checkQuotes(text); err != nil {
		return err
	}
	if err := checkBrackets(text); err != nil {
		return err
	}
	if err := checkShebang(text); err != nil {
		return err
	}
	if err := checkStructure(text, typ); err != nil {
		return err
	}
	return nil
}

// Valid is a convenience wrapper that classifies text itself and
// reports the overall verdict as a boolean.
func Valid(text string) bool {
	return Validate(text, Classify(text)) == nil
}

// checkQuotes verifies that single- and double-quoted regions are
// closed by end of text. Only one quote kind is active at a time: a
// quote character of the other kind is ignored inside a region, so
// `"it's"` is balanced. A backslash escapes the next character
// unconditionally.
func checkQuotes(text string) *ValidationError {
	var inSingle, inDouble, escaped bool

	for _, ch := range text {
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		}
	}

	switch {
	case inSingle:
		return &ValidationError{Reason: ReasonUnbalancedQuotes, Detail: "unterminated single-quoted string"}
	case inDouble:
		return &ValidationError{Reason: ReasonUnbalancedQuotes, Detail: "unterminated double-quoted string"}
	}
	return nil
}

// checkBrackets keeps independent counters for braces, square brackets,
// and parentheses, skipping characters inside quoted regions. A closer
// with no matching opener fails immediately; all counters must be zero
// at end of text.
func checkBrackets(text string) *ValidationError {
	var brace, bracket, paren int
	var inQuote, escaped bool
	var quoteChar rune

	for _, ch := range text {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if inQuote {
			if ch == quoteChar {
				inQuote = false
			}
			continue
		}
		if ch == '"' || ch == '\'' {
			inQuote = true
			quoteChar = ch
			continue
		}

		switch ch {
		case '{':
			brace++
		case '}':
			brace--
		case '[':
			bracket++
		case ']':
			bracket--
		case '(':
			paren++
		case ')':
			paren--
		}

		if brace < 0 || bracket < 0 || paren < 0 {
			return &ValidationError{Reason: ReasonUnbalancedBrackets, Detail: "closing bracket without matching opener"}
		}
	}

	if brace != 0 || bracket != 0 || paren != 0 {
		return &ValidationError{Reason: ReasonUnbalancedBrackets, Detail: "unclosed bracket at end of script"}
	}
	return nil
}

// checkShebang verifies that a shebang line, if present, names a
// non-empty interpreter free of embedded NUL. Absence of a shebang is
// valid.
func checkShebang(text string) *ValidationError {
	rest, found := strings.CutPrefix(firstLine(text), "#!")
	if !found {
		return nil
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return &ValidationError{Reason: ReasonMalformedShebang, Detail: "shebang names no interpreter"}
	}
	if strings.ContainsRune(fields[0], 0) {
		return &ValidationError{Reason: ReasonMalformedShebang, Detail: "interpreter path contains NUL"}
	}
	return nil
}

// checkStructure dispatches the type-specific keyword-count heuristic.
// Unknown scripts always pass: the balance checks above are the only
// signal available for them.
func checkStructure(text string, typ ScriptType) *ValidationError {
	switch typ {
	case Shell:
		return checkShellStructure(text)
	case Python:
		// Real structural checks for Python need a parser; the balance
		// checks above already ran.
		return nil
	case Perl:
		return checkPerlStructure(text)
	case Ruby:
		return checkRubyStructure(text)
	default:
		return nil
	}
}

// checkShellStructure counts line-leading "if "/"for " openers against
// lines consisting exactly of "fi"/"done". Totals must match; nesting
// order is not tracked.
func checkShellStructure(text string) *ValidationError {
	var ifCount, fiCount, forCount, doneCount int

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "if "):
			ifCount++
		case trimmed == "fi":
			fiCount++
		case strings.HasPrefix(trimmed, "for "):
			forCount++
		case trimmed == "done":
			doneCount++
		}
	}

	if ifCount != fiCount {
		return &ValidationError{
			Reason: ReasonStructuralMismatch,
			Detail: fmt.Sprintf("%d if against %d fi", ifCount, fiCount),
		}
	}
	if forCount != doneCount {
		return &ValidationError{
			Reason: ReasonStructuralMismatch,
			Detail: fmt.Sprintf("%d for against %d done", forCount, doneCount),
		}
	}
	return nil
}

// checkPerlStructure tallies braces across the whole text, ungated by
// quotes, and requires the count to land on zero.
func checkPerlStructure(text string) *ValidationError {
	var braces int
	for _, ch := range text {
		switch ch {
		case '{':
			braces++
		case '}':
			braces--
		}
	}
	if braces != 0 {
		return &ValidationError{
			Reason: ReasonStructuralMismatch,
			Detail: fmt.Sprintf("brace count off by %d", braces),
		}
	}
	return nil
}

// rubyOpeners are the block-opening keywords matched as line-leading
// prefixes against trimmed lines.
var rubyOpeners = []string{"def ", "class ", "module ", "if ", "unless ", "while ", "for ", "begin"}

// checkRubyStructure counts block-opening keywords against lines
// consisting exactly of "end".
func checkRubyStructure(text string) *ValidationError {
	var openers, ends int

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "end" {
			ends++
			continue
		}
		for _, opener := range rubyOpeners {
			if strings.HasPrefix(trimmed, opener) {
				openers++
				break
			}
		}
	}

	if openers != ends {
		return &ValidationError{
			Reason: ReasonStructuralMismatch,
			Detail: fmt.Sprintf("%d block openers against %d end", openers, ends),
		}
	}
	return nil
}

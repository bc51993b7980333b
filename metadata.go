package scriptview

import "strings"

// metadataWindow bounds how many leading lines are inspected for
// metadata, so arbitrarily long scripts are never scanned in full.
const metadataWindow = 50

// fieldPattern maps a lowercase "name:" marker to its canonical field
// name.
type fieldPattern struct {
	pattern string
	field   string
}

// fieldPatterns is the fixed vocabulary of recognized header fields,
// checked in order; the first pattern found in a comment line wins.
var fieldPatterns = []fieldPattern{
	{"author:", "Author"},
	{"version:", "Version"},
	{"description:", "Description"},
	{"date:", "Date"},
	{"license:", "License"},
	{"copyright:", "Copyright"},
	{"filename:", "Filename"},
	{"usage:", "Usage"},
	{"purpose:", "Purpose"},
	{"note:", "Note"},
	{"todo:", "Todo"},
	{"fixme:", "Fixme"},
	{"bug:", "Bug"},
	{"created:", "Created"},
	{"modified:", "Modified"},
	{"updated:", "Updated"},
}

// ExtractMetadata scans the leading comment block of text for known
// "field: value" patterns and returns the entries in source order. A
// shebang at the very start of the text is surfaced as a synthetic
// Interpreter entry; an indented "#!" is an ordinary comment, matching
// how classification reads the first line. Scanning stops at the first non-blank line that is neither a
// comment nor the shebang, or after the bounded window, whichever comes
// first. Returns nil when no metadata is found.
func ExtractMetadata(text string) []MetadataEntry {
	var entries []MetadataEntry

	for i, line := range splitLines(text) {
		if i >= metadataWindow {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if i == 0 {
			if sb, ok := ParseShebang(line, 0); ok {
				entries = append(entries, MetadataEntry{Field: "Interpreter", Value: sb.Interpreter})
				continue
			}
		}

		comment, found := strings.CutPrefix(trimmed, "#")
		if !found {
			break // end of header block
		}

		if entry, ok := matchField(strings.TrimSpace(comment)); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

// matchField checks a comment against the field vocabulary,
// case-insensitively. Patterns whose value would be empty are skipped
// in favor of later patterns.
func matchField(comment string) (MetadataEntry, bool) {
	lower := strings.ToLower(comment)
	for _, fp := range fieldPatterns {
		idx := strings.Index(lower, fp.pattern)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(comment[idx+len(fp.pattern):])
		if value == "" {
			continue
		}
		return MetadataEntry{Field: fp.field, Value: value}, true
	}
	return MetadataEntry{}, false
}

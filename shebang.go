package scriptview

import "strings"

// MaxShebangArgs bounds the number of interpreter arguments captured
// from a shebang line when no tighter limit is supplied.
const MaxShebangArgs = 16

// ParseShebang extracts the interpreter and its arguments from the first
// line of text. ok is false when the text does not start with "#!" or
// the marker is followed by nothing but whitespace. Tokens are plain
// whitespace-delimited words; shebang lines have no quoting. At most
// maxArgs arguments are captured, in order.
func ParseShebang(text string, maxArgs int) (Shebang, bool) {
	rest, found := strings.CutPrefix(firstLine(text), "#!")
	if !found {
		return Shebang{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Shebang{}, false
	}

	sb := Shebang{Interpreter: fields[0]}
	for _, arg := range fields[1:] {
		if len(sb.Args) >= maxArgs {
			break
		}
		sb.Args = append(sb.Args, arg)
	}
	return sb, true
}

// firstLine returns text up to the first line separator.
func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSuffix(line, "\r")
}

// splitLines splits text into lines without their separators. A trailing
// newline does not produce an empty final line, and an empty text has no
// lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

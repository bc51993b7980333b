package scriptview

import "strings"

// CollectStats counts lines and characters in text. Every line is
// counted as exactly one of blank, comment, or code, so the three
// counts always sum to TotalLines.
func CollectStats(text string) Stats {
	stats := Stats{TotalChars: len(text)}

	for _, line := range splitLines(text) {
		stats.TotalLines++
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			stats.BlankLines++
		case strings.HasPrefix(trimmed, "#"):
			stats.CommentLines++
		default:
			stats.CodeLines++
		}
	}

	return stats
}

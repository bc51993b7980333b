package scriptview

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Boundary sentinels. Every entry point that accepts raw bytes reports
// bad input through these values instead of panicking.
var (
	// ErrInvalidInput is returned for nil or empty input.
	ErrInvalidInput = errors.New("scriptview: empty input")

	// ErrInvalidEncoding is returned when input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("scriptview: input is not valid UTF-8")
)

// Report is the combined analysis of one script. All fields are derived
// from the input text and owned by the caller.
type Report struct {
	Type     ScriptType
	Shebang  *Shebang // nil when the script has no shebang
	Metadata []MetadataEntry
	Stats    Stats
	Fault    *ValidationError // nil when the script looks sound
}

// Valid reports whether the script passed every structural check.
func (r *Report) Valid() bool {
	return r.Fault == nil
}

// String renders the report as a short statistics block.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Type: %s\n", r.Type)
	fmt.Fprintf(&sb, "Total lines: %d\n", r.Stats.TotalLines)
	fmt.Fprintf(&sb, "Code lines: %d\n", r.Stats.CodeLines)
	fmt.Fprintf(&sb, "Comment lines: %d\n", r.Stats.CommentLines)
	fmt.Fprintf(&sb, "Blank lines: %d\n", r.Stats.BlankLines)
	fmt.Fprintf(&sb, "Total characters: %d", r.Stats.TotalChars)
	return sb.String()
}

// Analyze is the byte-buffer entry point: it validates the input
// encoding and runs classification, validation, metadata extraction,
// and statistics over the decoded text.
func Analyze(data []byte) (*Report, error) {
	text, err := decode(data)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Type:     Classify(text),
		Metadata: ExtractMetadata(text),
		Stats:    CollectStats(text),
	}

	if sb, ok := ParseShebang(text, MaxShebangArgs); ok {
		report.Shebang = &sb
	}

	var verr *ValidationError
	if err := Validate(text, report.Type); errors.As(err, &verr) {
		report.Fault = verr
	}

	return report, nil
}

// decode checks the input contract shared by all byte-level entry
// points: non-empty and valid UTF-8.
func decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidInput
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

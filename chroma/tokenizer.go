// Package chroma provides span tokenization backed by the chroma
// lexer library, as an alternative to the built-in shell scanner.
// Unlike the scanner it uses a real per-language grammar, at the cost
// of a heavier dependency.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/scriptview"
)

// Compile-time interface verification.
var _ scriptview.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts spans using the chroma lexer for a script type.
type Tokenizer struct {
	lexer chromalib.Lexer
}

// NewTokenizer creates a tokenizer for the given script type. Unknown
// types fall back to chroma's plaintext lexer, which yields Plain spans.
func NewTokenizer(typ scriptview.ScriptType) *Tokenizer {
	lexer := lexers.Get(lexerName(typ))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	// Coalesce merges consecutive tokens of the same type.
	return &Tokenizer{lexer: chromalib.Coalesce(lexer)}
}

// lexerName maps script types to chroma lexer names.
func lexerName(typ scriptview.ScriptType) string {
	switch typ {
	case scriptview.Shell:
		return "bash"
	case scriptview.Python:
		return "python"
	case scriptview.Perl:
		return "perl"
	case scriptview.Ruby:
		return "ruby"
	default:
		return "plaintext"
	}
}

// ScanLines tokenizes source with full context, then splits the spans
// by line. Tokenizing the whole text first keeps multi-line constructs
// like heredocs intact. Returns nil if lexing fails.
func (t *Tokenizer) ScanLines(source string) [][]scriptview.Span {
	if source == "" {
		return [][]scriptview.Span{}
	}

	iterator, err := t.lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var all []scriptview.Span
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		all = append(all, scriptview.Span{
			Text:     token.Value,
			Category: categoryFor(token.Type),
		})
	}

	return splitSpansByLine(all)
}

// categoryFor maps chroma token types to scriptview categories.
func categoryFor(tt chromalib.TokenType) scriptview.Category {
	switch tt {
	case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
		chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
		chromalib.CommentSpecial:
		return scriptview.Comment

	case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
		chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
		chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
		chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
		chromalib.StringSymbol:
		return scriptview.StringLit

	case chromalib.NameVariable, chromalib.NameVariableClass, chromalib.NameVariableGlobal,
		chromalib.NameVariableInstance, chromalib.NameVariableMagic:
		return scriptview.Variable

	case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
		chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved,
		chromalib.KeywordType, chromalib.NameBuiltin:
		return scriptview.Keyword

	case chromalib.Operator, chromalib.OperatorWord:
		return scriptview.Operator

	default:
		return scriptview.Plain
	}
}

// splitSpansByLine splits a flat span list into per-line slices,
// breaking spans that contain newlines at the line boundaries.
func splitSpansByLine(spans []scriptview.Span) [][]scriptview.Span {
	if len(spans) == 0 {
		return [][]scriptview.Span{}
	}

	var result [][]scriptview.Span
	var current []scriptview.Span

	for _, span := range spans {
		if !strings.Contains(span.Text, "\n") {
			current = append(current, span)
			continue
		}

		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, scriptview.Span{
					Text:     part,
					Category: span.Category,
				})
			}
			if i < len(parts)-1 {
				result = append(result, current)
				current = nil
			}
		}
	}

	if len(current) > 0 {
		result = append(result, current)
	}

	return result
}

// Package mock provides function-field mocks for scriptview interfaces.
package mock

import "github.com/fwojciec/scriptview"

// Compile-time interface verification.
var _ scriptview.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of scriptview.Tokenizer.
type Tokenizer struct {
	ScanLinesFn func(source string) [][]scriptview.Span
}

func (t *Tokenizer) ScanLines(source string) [][]scriptview.Span {
	return t.ScanLinesFn(source)
}

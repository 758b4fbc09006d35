package testutil

import (
	"iter"
	"slices"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
)

// MockTokenizer is a mock implementation of the ports.Tokenizer interface.
type MockTokenizer struct {
	TokenizeFunc func(text string, ignoreCase bool) iter.Seq[string]
}

// Tokenize mocks the Tokenize method.
func (m *MockTokenizer) Tokenize(text string, ignoreCase bool) iter.Seq[string] {
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(text, ignoreCase)
	}
	// Default behavior: whitespace separated fields, lowercased when asked.
	if ignoreCase {
		text = strings.ToLower(text)
	}
	return slices.Values(strings.Fields(text))
}

var _ ports.Tokenizer = (*MockTokenizer)(nil)

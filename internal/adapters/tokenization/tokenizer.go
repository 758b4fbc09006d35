package tokenization

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnicodeTokenizer splits text on every codepoint that is not alphabetic.
type UnicodeTokenizer struct{}

// NewUnicodeTokenizer creates a new UnicodeTokenizer.
func NewUnicodeTokenizer() ports.Tokenizer {
	return &UnicodeTokenizer{}
}

/*
Tokenize yields the maximal runs of alphabetic codepoints in text, left to right.
Digits, punctuation, whitespace, symbols and invalid UTF-8 bytes all separate tokens,
and empty runs are never yielded. When ignoreCase is set each token is lowercased with
the full Unicode mapping; no other normalization is applied.
*/
func (t *UnicodeTokenizer) Tokenize(text string, ignoreCase bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		// A Caser keeps state, so each pass gets its own.
		var lower cases.Caser
		if ignoreCase {
			lower = cases.Lower(language.Und)
		}

		start := -1
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			if isAlphabetic(r) {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				if !yield(normalize(text[start:i], ignoreCase, lower)) {
					return
				}
				start = -1
			}
			i += size
		}
		if start >= 0 {
			yield(normalize(text[start:], ignoreCase, lower))
		}
	}
}

// isAlphabetic reports whether r has the Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func normalize(token string, ignoreCase bool, lower cases.Caser) string {
	if !ignoreCase {
		return token
	}
	return lower.String(token)
}

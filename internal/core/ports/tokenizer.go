package ports

import "iter"

/*
Tokenizer splits raw text into word tokens.
This is a driven port, representing a domain capability.
*/
type Tokenizer interface {
	// Tokenize returns a lazy, left-to-right sequence of non-empty tokens.
	// Ranging over the sequence again restarts tokenization from the beginning.
	Tokenize(text string, ignoreCase bool) iter.Seq[string]
}

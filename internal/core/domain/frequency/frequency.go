/*
Package frequency defines the core domain entities for word frequency counting.
*/
package frequency

/*
Entry is a single word and the number of times it occurred in the input.
Entries flow through filtering, sorting, limiting and rendering.
*/
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count uint64 `json:"count" yaml:"count"`
}

/*
Table maps each distinct word to its occurrence count.
Keys are never empty. Iteration order carries no meaning.
*/
type Table map[string]uint64

// Entries copies the table into an unordered slice of entries. The table is left untouched.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for word, count := range t {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	return entries
}

package wordfrequency

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// count aggregates tokens into a fresh frequency table.
// Any permutation of the same tokens yields the same table.
func count(tokens iter.Seq[string]) frequency.Table {
	table := make(frequency.Table)
	for tok := range tokens {
		table[tok]++
	}
	return table
}

// filterMinLength removes every word shorter than minLength characters.
// Whole entries are removed, so the counts of surviving words are untouched.
func filterMinLength(table frequency.Table, minLength int) {
	if minLength <= 1 {
		return // Tokens are never empty.
	}
	for word := range table {
		if utf8.RuneCountInString(word) < minLength {
			delete(table, word)
		}
	}
}

// compareByCountThenAlpha orders by descending count, then ascending word.
func compareByCountThenAlpha(a, b frequency.Entry) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	}
	return strings.Compare(a.Word, b.Word)
}

// compareAlpha orders by ascending word. Byte order of UTF-8 equals codepoint order.
func compareAlpha(a, b frequency.Entry) int {
	return strings.Compare(a.Word, b.Word)
}

/*
sortEntries puts entries into a total order. Words are unique keys, so the explicit
secondary key decides every tie and the result does not depend on input order.
Unknown modes fall back to count-then-alpha.
*/
func sortEntries(entries []frequency.Entry, mode report.SortMode) {
	if mode == report.SortAlpha {
		slices.SortFunc(entries, compareAlpha)
		return
	}
	slices.SortFunc(entries, compareByCountThenAlpha)
}

// limit returns the first n entries, or all of them when n is 0 or at least len(entries).
func limit(entries []frequency.Entry, n int) []frequency.Entry {
	if n > 0 && n < len(entries) {
		return entries[:n]
	}
	return entries
}

package wordfrequency

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

func totalCount(table frequency.Table) uint64 {
	var total uint64
	for _, c := range table {
		total += c
	}
	return total
}

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   frequency.Table
	}{
		{name: "no tokens", tokens: nil, want: frequency.Table{}},
		{name: "repeated tokens", tokens: []string{"a", "a", "b"}, want: frequency.Table{"a": 2, "b": 1}},
		{name: "case is not touched", tokens: []string{"Go", "go"}, want: frequency.Table{"Go": 1, "go": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := count(slices.Values(tt.tokens))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("count() = %v, want %v", got, tt.want)
			}
			if total := totalCount(got); total != uint64(len(tt.tokens)) {
				t.Errorf("count() total = %d, want %d", total, len(tt.tokens))
			}
		})
	}
}

func TestCount_OrderInsensitive(t *testing.T) {
	tokens := []string{"x", "y", "x", "z", "y", "x"}
	reversed := slices.Clone(tokens)
	slices.Reverse(reversed)

	if a, b := count(slices.Values(tokens)), count(slices.Values(reversed)); !reflect.DeepEqual(a, b) {
		t.Errorf("count() depends on order: %v vs %v", a, b)
	}
}

func TestFilterMinLength(t *testing.T) {
	base := frequency.Table{"a": 5, "to": 3, "the": 2, "héé": 1, "word": 1}

	tests := []struct {
		name      string
		minLength int
		want      frequency.Table
	}{
		{name: "zero removes nothing", minLength: 0, want: base},
		{name: "one removes nothing", minLength: 1, want: base},
		{name: "two removes single letters", minLength: 2, want: frequency.Table{"to": 3, "the": 2, "héé": 1, "word": 1}},
		{name: "length counts characters not bytes", minLength: 3, want: frequency.Table{"the": 2, "héé": 1, "word": 1}},
		{name: "threshold above every word", minLength: 10, want: frequency.Table{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := make(frequency.Table, len(base))
			for k, v := range base {
				table[k] = v
			}
			filterMinLength(table, tt.minLength)
			if !reflect.DeepEqual(table, tt.want) {
				t.Errorf("filterMinLength(%d) = %v, want %v", tt.minLength, table, tt.want)
			}
		})
	}
}

// Filtering whole entries after aggregation must give the same counts as dropping
// short occurrences before counting.
func TestFilterMinLength_MatchesPerOccurrenceFiltering(t *testing.T) {
	tokens := strings.Fields("a bb a ccc bb a dddd ccc e")
	const minLength = 2

	aggregated := count(slices.Values(tokens))
	filterMinLength(aggregated, minLength)

	var kept []string
	for _, tok := range tokens {
		if len(tok) >= minLength {
			kept = append(kept, tok)
		}
	}
	perOccurrence := count(slices.Values(kept))

	if !reflect.DeepEqual(aggregated, perOccurrence) {
		t.Errorf("aggregate filter = %v, per-occurrence filter = %v", aggregated, perOccurrence)
	}
}

func TestSortEntries(t *testing.T) {
	input := []frequency.Entry{
		{Word: "pear", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "zebra", Count: 5},
		{Word: "banana", Count: 1},
		{Word: "Apple", Count: 2},
	}

	tests := []struct {
		name string
		mode report.SortMode
		want []frequency.Entry
	}{
		{
			name: "count then alpha",
			mode: report.SortByCount,
			want: []frequency.Entry{
				{Word: "zebra", Count: 5},
				{Word: "Apple", Count: 2},
				{Word: "apple", Count: 2},
				{Word: "pear", Count: 2},
				{Word: "banana", Count: 1},
			},
		},
		{
			name: "alpha ignores count",
			mode: report.SortAlpha,
			want: []frequency.Entry{
				{Word: "Apple", Count: 2},
				{Word: "apple", Count: 2},
				{Word: "banana", Count: 1},
				{Word: "pear", Count: 2},
				{Word: "zebra", Count: 5},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := slices.Clone(input)
			sortEntries(first, tt.mode)
			if !reflect.DeepEqual(first, tt.want) {
				t.Fatalf("sortEntries() = %v, want %v", first, tt.want)
			}

			// Same multiset in another order gives the same result.
			shuffled := slices.Clone(input)
			slices.Reverse(shuffled)
			sortEntries(shuffled, tt.mode)
			if !reflect.DeepEqual(shuffled, tt.want) {
				t.Errorf("sortEntries() on reversed input = %v, want %v", shuffled, tt.want)
			}

			// Sorting again changes nothing.
			again := slices.Clone(first)
			sortEntries(again, tt.mode)
			if !reflect.DeepEqual(again, first) {
				t.Errorf("sortEntries() not idempotent: %v vs %v", again, first)
			}
		})
	}
}

func TestSortEntries_CountOrderProperty(t *testing.T) {
	table := count(slices.Values(strings.Fields("the cat and the hat and the bat sat on a mat cat")))
	entries := table.Entries()
	sortEntries(entries, report.SortByCount)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Count < cur.Count || (prev.Count == cur.Count && prev.Word > cur.Word) {
			t.Errorf("entries %d and %d out of order: %v, %v", i-1, i, prev, cur)
		}
	}
}

func TestSortEntries_CodepointOrder(t *testing.T) {
	entries := []frequency.Entry{{Word: "é", Count: 1}, {Word: "z", Count: 1}, {Word: "Z", Count: 1}, {Word: "a", Count: 1}}
	sortEntries(entries, report.SortAlpha)

	var got []string
	for _, e := range entries {
		got = append(got, e.Word)
	}
	if want := []string{"Z", "a", "z", "é"}; !reflect.DeepEqual(got, want) {
		t.Errorf("alpha order = %v, want %v", got, want)
	}
}

func TestLimit(t *testing.T) {
	entries := []frequency.Entry{{Word: "a", Count: 3}, {Word: "b", Count: 2}, {Word: "c", Count: 1}}

	tests := []struct {
		name string
		n    int
		want []frequency.Entry
	}{
		{name: "zero means unlimited", n: 0, want: entries},
		{name: "equal to length", n: 3, want: entries},
		{name: "greater than length", n: 10, want: entries},
		{name: "truncates to leading entries", n: 2, want: entries[:2]},
		{name: "single entry", n: 1, want: entries[:1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := limit(entries, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("limit(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}

	if got := limit(nil, 5); len(got) != 0 {
		t.Errorf("limit(nil, 5) = %v, want empty", got)
	}
}

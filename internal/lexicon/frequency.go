package lexicon

import "strings"

// DefaultRank is the frequency rank assumed for any word absent from
// the table: the worst case, never missing or zero.
const DefaultRank = 10000

// FrequencyTable maps lowercased words to corpus frequency ranks in
// [1, 10000]. Immutable after construction.
type FrequencyTable struct {
	ranks map[string]int
}

// NewFrequencyTable builds a table from a word to rank mapping. Keys
// are lowercased for consistent lookup.
func NewFrequencyTable(ranks map[string]int) *FrequencyTable {
	m := make(map[string]int, len(ranks))
	for w, r := range ranks {
		m[strings.ToLower(w)] = r
	}
	return &FrequencyTable{ranks: m}
}

// Len returns the number of ranked words.
func (ft *FrequencyTable) Len() int {
	return len(ft.ranks)
}

// Rank returns the frequency rank of a word, or DefaultRank when the
// word is not in the table.
func (ft *FrequencyTable) Rank(word string) int {
	if r, ok := ft.ranks[strings.ToLower(word)]; ok {
		return r
	}
	return DefaultRank
}

package lexicon

import (
	"fmt"
	"sort"
	"strings"
)

// Tiebreak selects which level wins when a base form carries entries
// for several parts of speech and the caller did not supply one.
type Tiebreak string

const (
	// TiebreakLowest picks the easiest level across POS variants.
	TiebreakLowest Tiebreak = "lowest"
	// TiebreakHighest picks the hardest level across POS variants.
	TiebreakHighest Tiebreak = "highest"
)

// ParseTiebreak parses a user-provided tie-break policy.
func ParseTiebreak(raw string) (Tiebreak, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(TiebreakLowest):
		return TiebreakLowest, nil
	case string(TiebreakHighest):
		return TiebreakHighest, nil
	default:
		return "", fmt.Errorf("unknown tiebreak policy %q (supported: lowest, highest)", raw)
	}
}

// WordEntry is one dictionary record: a base form with its part of
// speech and CEFR level. A base form may have entries under several
// parts of speech at different levels.
type WordEntry struct {
	Base  string
	POS   string
	Level Level
}

type entryKey struct {
	base string
	pos  string
}

// Lexicon is the CEFR word dictionary. Lookups degrade gracefully:
// exact (base, POS) first, then base-only with the configured
// tie-break, then not found. It is immutable after construction.
type Lexicon struct {
	byKey    map[entryKey]WordEntry
	byBase   map[string][]WordEntry
	tiebreak Tiebreak
}

// NewLexicon builds a Lexicon from entries using the given tie-break
// policy for base-only lookups. Duplicate (base, POS) pairs keep the
// first entry seen.
func NewLexicon(entries []WordEntry, tiebreak Tiebreak) *Lexicon {
	lx := &Lexicon{
		byKey:    make(map[entryKey]WordEntry, len(entries)),
		byBase:   make(map[string][]WordEntry),
		tiebreak: tiebreak,
	}
	for _, e := range entries {
		e.Base = strings.ToLower(e.Base)
		e.POS = strings.ToLower(e.POS)
		k := entryKey{base: e.Base, pos: e.POS}
		if _, exists := lx.byKey[k]; exists {
			continue
		}
		lx.byKey[k] = e
		lx.byBase[e.Base] = append(lx.byBase[e.Base], e)
	}
	return lx
}

// Len returns the number of dictionary entries.
func (lx *Lexicon) Len() int {
	return len(lx.byKey)
}

// Lookup resolves a (base form, POS) pair through the fallback chain:
// exact key, then base-only with the tie-break policy. The boolean is
// false when the base form is absent entirely.
func (lx *Lexicon) Lookup(base, pos string) (WordEntry, bool) {
	base = strings.ToLower(base)
	pos = strings.ToLower(pos)

	if pos != "" {
		if e, ok := lx.byKey[entryKey{base: base, pos: pos}]; ok {
			return e, true
		}
	}
	return lx.LookupBase(base)
}

// LookupBase resolves a base form without a POS, applying the
// tie-break policy across POS variants.
func (lx *Lexicon) LookupBase(base string) (WordEntry, bool) {
	variants := lx.byBase[strings.ToLower(base)]
	if len(variants) == 0 {
		return WordEntry{}, false
	}

	best := variants[0]
	for _, e := range variants[1:] {
		switch lx.tiebreak {
		case TiebreakHighest:
			if e.Level.Rank() > best.Level.Rank() {
				best = e
			}
		default:
			if e.Level.Rank() < best.Level.Rank() {
				best = e
			}
		}
	}
	return best, true
}

// Difficulty returns the numeric difficulty (1..6) of a word resolved
// through the fallback chain, or 0 when the word is not in the
// dictionary. Absent words are excluded from level-dependent metrics,
// never treated as an error.
func (lx *Lexicon) Difficulty(base, pos string) int {
	e, ok := lx.Lookup(base, pos)
	if !ok {
		return 0
	}
	return e.Level.Rank()
}

// WordsByLevel returns all entries at the given level, deduplicated by
// (base, POS) and sorted by base form then POS.
func (lx *Lexicon) WordsByLevel(level Level) []WordEntry {
	var out []WordEntry
	for _, e := range lx.byKey {
		if e.Level == level {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Base != out[j].Base {
			return out[i].Base < out[j].Base
		}
		return out[i].POS < out[j].POS
	})
	return out
}

// UnusedWords returns every entry at the given level whose base form
// is not in the present set, as a base form to POS mapping. The
// present set holds lowercased content-word lemmas of a text.
func (lx *Lexicon) UnusedWords(level Level, present map[string]struct{}) map[string]string {
	out := make(map[string]string)
	for _, e := range lx.byKey {
		if e.Level != level {
			continue
		}
		if _, used := present[e.Base]; used {
			continue
		}
		out[e.Base] = e.POS
	}
	return out
}

// GroupedCounts returns the number of dictionary entries per level.
func (lx *Lexicon) GroupedCounts() map[Level]int {
	out := make(map[Level]int, len(Levels))
	for _, e := range lx.byKey {
		out[e.Level]++
	}
	return out
}

// Package lexicon holds the static lexical resources: the CEFR word
// dictionary and the frequency-rank table, plus the vocabulary queries
// built on top of them. Resources are loaded once and read-only after.
package lexicon

import (
	"fmt"
	"strings"
)

// Level is a CEFR proficiency level (A1 through C2).
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Levels lists all CEFR levels in ascending difficulty order.
var Levels = []Level{A1, A2, B1, B2, C1, C2}

var levelRanks = map[Level]int{
	A1: 1, A2: 2, B1: 3, B2: 4, C1: 5, C2: 6,
}

// Rank returns the numeric difficulty of the level (A1=1 .. C2=6),
// or 0 for an invalid level.
func (l Level) Rank() int {
	return levelRanks[l]
}

// Valid reports whether l is one of the six CEFR levels.
func (l Level) Valid() bool {
	_, ok := levelRanks[l]
	return ok
}

// ParseLevel parses a user-provided level string (case-insensitive).
func ParseLevel(raw string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown CEFR level %q (supported: A1, A2, B1, B2, C1, C2)", raw)
	}
	return l, nil
}

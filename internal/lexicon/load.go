package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/word_lookup.json data/frequencies.json
var dataFS embed.FS

// wordFileEntry is the on-disk shape of one POS variant of a word.
type wordFileEntry struct {
	POS   string `json:"pos"`
	Level string `json:"level"`
}

// decodeLexicon parses the word dictionary format: a mapping from base
// form to its POS variants. A base form may list several variants at
// different levels.
func decodeLexicon(data []byte, tiebreak Tiebreak) (*Lexicon, error) {
	var raw map[string][]wordFileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing word dictionary: %w", err)
	}

	var entries []WordEntry
	for base, variants := range raw {
		for _, v := range variants {
			level, err := ParseLevel(v.Level)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", base, err)
			}
			entries = append(entries, WordEntry{Base: base, POS: v.POS, Level: level})
		}
	}
	return NewLexicon(entries, tiebreak), nil
}

// LoadLexicon reads a word dictionary file from disk.
func LoadLexicon(path string, tiebreak Tiebreak) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word dictionary: %w", err)
	}
	lx, err := decodeLexicon(data, tiebreak)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lx, nil
}

// LoadFrequencies reads a word to frequency-rank file from disk.
func LoadFrequencies(path string) (*FrequencyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading frequency table: %w", err)
	}
	ft, err := decodeFrequencies(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ft, nil
}

func decodeFrequencies(data []byte) (*FrequencyTable, error) {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing frequency table: %w", err)
	}
	return NewFrequencyTable(raw), nil
}

// EmbeddedLexicon returns the word dictionary bundled with the binary.
func EmbeddedLexicon(tiebreak Tiebreak) (*Lexicon, error) {
	data, err := dataFS.ReadFile("data/word_lookup.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded word dictionary: %w", err)
	}
	return decodeLexicon(data, tiebreak)
}

// EmbeddedFrequencies returns the frequency table bundled with the
// binary.
func EmbeddedFrequencies() (*FrequencyTable, error) {
	data, err := dataFS.ReadFile("data/frequencies.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded frequency table: %w", err)
	}
	return decodeFrequencies(data)
}

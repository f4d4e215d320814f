package analyzer

import "github.com/jeduden/cefrize/internal/lexicon"

// Report is the result of one analysis call. Either SingleWord is set
// and WordLevel carries the dictionary level of the input word, or
// Level carries the CEFR-J band and Scores the converted per-metric
// values. Raw and Stats are present in detailed mode only.
type Report struct {
	SingleWord bool
	WordLevel  lexicon.Level

	Level  string
	Scores map[string]float64
	Raw    map[string]float64
	Stats  *TextStats
}

// TextStats summarizes the analyzed text.
type TextStats struct {
	Words     int
	Sentences int
	Tokens    int
}

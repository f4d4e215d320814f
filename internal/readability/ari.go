// Package readability computes the Automated Readability Index over
// raw text. It stands in for the external readability collaborator of
// the analysis pipeline and works on characters, words, and sentences
// only.
package readability

import (
	"strings"
	"unicode"
)

// Index returns the Automated Readability Index for the text:
//
//	4.71*(characters/words) + 0.5*(words/sentences) - 21.43
//
// Characters are all non-whitespace runes, punctuation included. A
// text with no words scores 0.
func Index(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}

	chars := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			chars++
		}
	}

	sentences := countSentences(text)
	return 4.71*float64(chars)/float64(words) + 0.5*float64(words)/float64(sentences) - 21.43
}

// countSentences counts terminator runs (. ! ?). A text without any
// terminator counts as one sentence.
func countSentences(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inRun {
				count++
				inRun = true
			}
		default:
			inRun = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

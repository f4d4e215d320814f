// Package metrics defines the eight text metrics behind the CEFR-J
// estimate. Each metric is a pure function of a shared Input and is
// registered as a Definition; extractors are mutually independent and
// safe to run in parallel over the same Input.
package metrics

import (
	"strings"

	"github.com/jeduden/cefrize/internal/lexicon"
	"github.com/jeduden/cefrize/internal/nlp"
)

// Input is the shared metric input for one analysis call: the raw
// text, its parsed document, and the process-wide lexical resources.
// Derived values are computed lazily and cached; Input is not safe for
// concurrent mutation, so Prepare must run before fan-out.
type Input struct {
	Text        string
	Doc         *nlp.Document
	Lexicon     *lexicon.Lexicon
	Frequencies *lexicon.FrequencyTable

	contentWords      []nlp.Token
	contentWordsReady bool
}

// NewInput constructs a metric input.
func NewInput(text string, doc *nlp.Document, lx *lexicon.Lexicon, ft *lexicon.FrequencyTable) *Input {
	return &Input{
		Text:        text,
		Doc:         doc,
		Lexicon:     lx,
		Frequencies: ft,
	}
}

// Prepare forces all cached derived values so the Input can be shared
// read-only across concurrent metric computations.
func (in *Input) Prepare() {
	in.ContentWords()
}

// ContentWords returns all noun, verb, adjective, and adverb tokens of
// the document in order.
func (in *Input) ContentWords() []nlp.Token {
	if in.contentWordsReady {
		return in.contentWords
	}

	for _, tok := range in.Doc.Tokens() {
		if tok.IsContentWord() {
			in.contentWords = append(in.contentWords, tok)
		}
	}
	in.contentWordsReady = true
	return in.contentWords
}

// ContentLemmas returns the set of lowercased content-word lemmas.
func (in *Input) ContentLemmas() map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range in.ContentWords() {
		lemma := strings.ToLower(tok.Lemma)
		if lemma == "" {
			lemma = strings.ToLower(tok.Surface)
		}
		out[lemma] = struct{}{}
	}
	return out
}

// wordLevel resolves a content token's CEFR level: surface form first,
// then lemma, through the lexicon's fallback chain.
func (in *Input) wordLevel(tok nlp.Token) (lexicon.Level, bool) {
	pos := posName(tok.POS)
	if e, ok := in.Lexicon.Lookup(strings.ToLower(tok.Surface), pos); ok {
		return e.Level, true
	}
	if e, ok := in.Lexicon.Lookup(strings.ToLower(tok.Lemma), pos); ok {
		return e.Level, true
	}
	return "", false
}

// posName maps a coarse POS tag to the dictionary's POS vocabulary.
func posName(pos nlp.POS) string {
	switch pos {
	case nlp.Noun, nlp.ProperNoun:
		return "noun"
	case nlp.Verb, nlp.Auxiliary:
		return "verb"
	case nlp.Adjective:
		return "adjective"
	case nlp.Adverb:
		return "adverb"
	default:
		return ""
	}
}

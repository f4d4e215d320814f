// Package analyzer orchestrates the estimation pipeline: input
// validation, parsing, parallel metric extraction, regression
// conversion, and CEFR-J aggregation. It also hosts the vocabulary
// queries that need a parse of the input text.
package analyzer

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/jeduden/cefrize/internal/lexicon"
	vlog "github.com/jeduden/cefrize/internal/log"
	"github.com/jeduden/cefrize/internal/metrics"
	"github.com/jeduden/cefrize/internal/nlp"
	"github.com/jeduden/cefrize/internal/score"
)

// ValidationError reports a text whose word count is outside the
// accepted range. It is fatal for the call; no partial result exists.
type ValidationError struct {
	Words, Min, Max int
}

func (e *ValidationError) Error() string {
	if e.Words < e.Min {
		return fmt.Sprintf("text too short: %d words, minimum is %d", e.Words, e.Min)
	}
	return fmt.Sprintf("text too long: %d words, maximum is %d", e.Words, e.Max)
}

// Analyzer runs CEFR-J analyses over a shared parser and read-only
// lexical resources. It is safe for concurrent use once constructed.
type Analyzer struct {
	Parser      nlp.Parser
	Lexicon     *lexicon.Lexicon
	Frequencies *lexicon.FrequencyTable
	MinWords    int
	MaxWords    int
	Log         *vlog.Logger
}

// New constructs an Analyzer with the default word-count bounds.
func New(parser nlp.Parser, lx *lexicon.Lexicon, ft *lexicon.FrequencyTable) *Analyzer {
	return &Analyzer{
		Parser:      parser,
		Lexicon:     lx,
		Frequencies: ft,
		MinWords:    10,
		MaxWords:    10000,
		Log:         &vlog.Logger{},
	}
}

// Analyze estimates the CEFR-J level of the text. A single-word input
// short-circuits to a dictionary lookup and returns a word-level
// report instead of a band.
func (a *Analyzer) Analyze(text string) (*Report, error) {
	return a.analyze(text, false)
}

// AnalyzeDetailed is Analyze plus the raw metric values and basic text
// statistics.
func (a *Analyzer) AnalyzeDetailed(text string) (*Report, error) {
	return a.analyze(text, true)
}

func (a *Analyzer) analyze(text string, detailed bool) (*Report, error) {
	stripped := strings.TrimSpace(text)

	// A lone word cannot carry the eight-metric pipeline; report its
	// dictionary level instead.
	if stripped != "" && len(strings.Fields(stripped)) == 1 {
		level, _ := a.WordLevel(stripped)
		a.Log.Printf("single-word input %q: level %q", stripped, level)
		return &Report{SingleWord: true, WordLevel: level}, nil
	}

	words := len(strings.Fields(text))
	if words < a.MinWords || words > a.MaxWords {
		return nil, &ValidationError{Words: words, Min: a.MinWords, Max: a.MaxWords}
	}
	a.Log.Printf("input validated: %d words", words)

	doc, err := a.Parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing text: %w", err)
	}
	a.Log.Printf("parsed %d tokens in %d sentences", doc.TokenCount(), doc.SentenceCount())

	in := metrics.NewInput(text, doc, a.Lexicon, a.Frequencies)
	in.Prepare()

	// Extractors are independent pure functions over the prepared
	// input; fan out and join before aggregation.
	defs := metrics.All()
	raw := make([]float64, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def metrics.Definition) {
			defer wg.Done()
			raw[i] = def.Compute(in)
		}(i, def)
	}
	wg.Wait()

	rawByName := make(map[string]float64, len(defs))
	for i, def := range defs {
		rawByName[def.Name] = raw[i]
		a.Log.Printf("metric %s: raw %.4f", def.Name, raw[i])
	}

	converted, err := score.ConvertAll(rawByName)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(converted))
	values := make([]float64, 0, len(converted))
	for name, v := range converted {
		rounded := round2(v)
		scores[name] = rounded
		values = append(values, rounded)
	}

	final := score.Aggregate(values)
	band := score.Band(final)
	a.Log.Printf("aggregate %.4f: %s", final, band)

	rep := &Report{Level: band, Scores: scores}
	if detailed {
		rep.Raw = make(map[string]float64, len(rawByName))
		for name, v := range rawByName {
			rep.Raw[name] = round4(v)
		}
		rep.Stats = &TextStats{
			Words:     words,
			Sentences: doc.SentenceCount(),
			Tokens:    doc.TokenCount(),
		}
	}
	return rep, nil
}

// WordLevel looks up the CEFR level of a single word: the surface form
// first, then its lemma, through the lexicon's fallback chain. The
// boolean is false when the word is unknown; that is a sentinel, not
// an error.
func (a *Analyzer) WordLevel(word string) (lexicon.Level, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || strings.ContainsRune(word, ' ') {
		return "", false
	}

	if e, ok := a.Lexicon.LookupBase(word); ok {
		return e.Level, true
	}

	// Fall back to the lemma when the surface form is inflected.
	doc, err := a.Parser.Parse(word)
	if err != nil {
		return "", false
	}
	for _, tok := range doc.Tokens() {
		if e, ok := a.Lexicon.LookupBase(tok.Lemma); ok {
			return e.Level, true
		}
	}
	return "", false
}

// UnusedWords parses the text and returns every dictionary entry at
// the given level whose base form does not occur among the text's
// content-word lemmas, as a base form to POS mapping.
func (a *Analyzer) UnusedWords(level lexicon.Level, text string) (map[string]string, error) {
	doc, err := a.Parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing text: %w", err)
	}

	in := metrics.NewInput(text, doc, a.Lexicon, a.Frequencies)
	present := in.ContentLemmas()
	a.Log.Printf("%d content lemmas present", len(present))
	return a.Lexicon.UnusedWords(level, present), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

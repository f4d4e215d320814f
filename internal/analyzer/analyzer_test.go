package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeduden/cefrize/internal/lexicon"
	"github.com/jeduden/cefrize/internal/nlp"
	"github.com/jeduden/cefrize/internal/score"
)

// fakeParser returns a canned document for every input, or an error.
type fakeParser struct {
	doc *nlp.Document
	err error
}

func (p *fakeParser) Parse(text string) (*nlp.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.doc != nil {
		return p.doc, nil
	}
	// Minimal fallback: one sentence of noun tokens.
	var tokens []nlp.Token
	for _, w := range strings.Fields(text) {
		w = strings.ToLower(strings.Trim(w, ".,!?"))
		tokens = append(tokens, nlp.Token{Surface: w, Lemma: w, POS: nlp.Noun})
	}
	return &nlp.Document{Sentences: []nlp.Sentence{{Tokens: tokens}}}, nil
}

func testAnalyzer(t *testing.T, p nlp.Parser) *Analyzer {
	t.Helper()
	lx, err := lexicon.EmbeddedLexicon(lexicon.TiebreakLowest)
	if err != nil {
		t.Fatal(err)
	}
	ft, err := lexicon.EmbeddedFrequencies()
	if err != nil {
		t.Fatal(err)
	}
	return New(p, lx, ft)
}

func wordsText(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestAnalyze_WordCountBoundaries(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})

	cases := []struct {
		words int
		ok    bool
	}{
		{9, false},
		{10, true},
		{10000, true},
		{10001, false},
	}
	for _, c := range cases {
		_, err := a.Analyze(wordsText(c.words))
		if c.ok && err != nil {
			t.Errorf("%d words: unexpected error %v", c.words, err)
		}
		if !c.ok {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%d words: want ValidationError, got %v", c.words, err)
			}
		}
	}
}

func TestAnalyze_SingleWordShortCircuit(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})

	rep, err := a.Analyze("beautiful")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !rep.SingleWord {
		t.Fatal("expected single-word report")
	}
	if rep.WordLevel != lexicon.B1 {
		t.Errorf("WordLevel = %s, want B1", rep.WordLevel)
	}
	if rep.Level != "" || rep.Scores != nil {
		t.Error("single-word report must not carry band or scores")
	}
}

func TestAnalyze_SingleUnknownWord(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})

	rep, err := a.Analyze("  xyzzyplugh  ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !rep.SingleWord || rep.WordLevel != "" {
		t.Errorf("unknown word report = %+v", rep)
	}
}

func TestAnalyze_ScoresCappedAndComplete(t *testing.T) {
	doc := &nlp.Document{
		Sentences: []nlp.Sentence{{Tokens: []nlp.Token{
			{Surface: "The", Lemma: "the", POS: nlp.Determiner},
			{Surface: "cat", Lemma: "cat", POS: nlp.Noun},
			{Surface: "chased", Lemma: "chase", POS: nlp.Verb},
			{Surface: "a", Lemma: "a", POS: nlp.Determiner},
			{Surface: "dog", Lemma: "dog", POS: nlp.Noun},
			{Surface: ".", Lemma: ".", POS: nlp.Punctuation},
		}}},
		NounPhrases: []nlp.NounPhrase{
			{Sentence: 0, Start: 0, End: 2, Role: nlp.RoleSubject},
			{Sentence: 0, Start: 3, End: 5, Role: nlp.RoleObject},
		},
	}
	a := testAnalyzer(t, &fakeParser{doc: doc})

	rep, err := a.Analyze(wordsText(20))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Level == "" {
		t.Error("missing level")
	}
	if len(rep.Scores) != 8 {
		t.Errorf("got %d scores, want 8", len(rep.Scores))
	}
	for name, v := range rep.Scores {
		if v > score.MaxScore {
			t.Errorf("%s = %v, exceeds cap", name, v)
		}
	}
	if rep.Raw != nil || rep.Stats != nil {
		t.Error("non-detailed report must not carry raw metrics")
	}
}

func TestAnalyzeDetailed_AddsRawAndStats(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})

	rep, err := a.AnalyzeDetailed(wordsText(12))
	if err != nil {
		t.Fatalf("AnalyzeDetailed: %v", err)
	}
	if len(rep.Raw) != 8 {
		t.Errorf("got %d raw metrics, want 8", len(rep.Raw))
	}
	if rep.Stats == nil || rep.Stats.Words != 12 {
		t.Errorf("stats = %+v", rep.Stats)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})
	text := wordsText(50)

	first, err := a.Analyze(text)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		rep, err := a.Analyze(text)
		if err != nil {
			t.Fatal(err)
		}
		if rep.Level != first.Level {
			t.Fatalf("level varies: %s vs %s", rep.Level, first.Level)
		}
		for name, v := range rep.Scores {
			if first.Scores[name] != v {
				t.Fatalf("score %s varies: %v vs %v", name, v, first.Scores[name])
			}
		}
	}
}

func TestAnalyze_ParseFailurePropagates(t *testing.T) {
	parseErr := errors.New("engine exploded")
	a := testAnalyzer(t, &fakeParser{err: parseErr})

	if _, err := a.Analyze(wordsText(15)); !errors.Is(err, parseErr) {
		t.Errorf("err = %v, want wrapped parse error", err)
	}
}

func TestWordLevel_Idempotent(t *testing.T) {
	a := testAnalyzer(t, &fakeParser{})

	l1, ok1 := a.WordLevel("cat")
	l2, ok2 := a.WordLevel("cat")
	if l1 != l2 || ok1 != ok2 {
		t.Errorf("repeated lookups differ: %s/%v vs %s/%v", l1, ok1, l2, ok2)
	}
	if l1 != lexicon.A1 {
		t.Errorf("cat = %s, want A1", l1)
	}
}

func TestWordLevel_FallsBackToLemma(t *testing.T) {
	// The fake parser lemmatizes nothing, so inject a canned doc whose
	// token carries the lemma.
	doc := &nlp.Document{Sentences: []nlp.Sentence{{Tokens: []nlp.Token{
		{Surface: "sitting", Lemma: "sit", POS: nlp.Verb},
	}}}}
	a := testAnalyzer(t, &fakeParser{doc: doc})

	level, ok := a.WordLevel("sitting")
	if !ok || level != lexicon.A1 {
		t.Errorf("sitting = %s/%v, want A1/true", level, ok)
	}
}

func TestUnusedWords_DisjointFromText(t *testing.T) {
	doc := &nlp.Document{Sentences: []nlp.Sentence{{Tokens: []nlp.Token{
		{Surface: "The", Lemma: "the", POS: nlp.Determiner},
		{Surface: "cat", Lemma: "cat", POS: nlp.Noun},
		{Surface: "sat", Lemma: "sit", POS: nlp.Verb},
		{Surface: "on", Lemma: "on", POS: nlp.Adposition},
		{Surface: "the", Lemma: "the", POS: nlp.Determiner},
		{Surface: "mat", Lemma: "mat", POS: nlp.Noun},
		{Surface: ".", Lemma: ".", POS: nlp.Punctuation},
	}}}}
	a := testAnalyzer(t, &fakeParser{doc: doc})

	unused, err := a.UnusedWords(lexicon.C1, "The cat sat on the mat.")
	if err != nil {
		t.Fatalf("UnusedWords: %v", err)
	}

	// No content lemma of the sentence is C1, so every C1 entry is
	// unused.
	all := a.Lexicon.WordsByLevel(lexicon.C1)
	if len(unused) != len(all) {
		t.Errorf("got %d unused C1 words, want all %d", len(unused), len(all))
	}
	for _, lemma := range []string{"cat", "sit", "mat", "the", "on"} {
		if _, ok := unused[lemma]; ok {
			t.Errorf("present lemma %q in unused result", lemma)
		}
	}

	// And at A1, words of the text must be excluded.
	unusedA1, err := a.UnusedWords(lexicon.A1, "The cat sat on the mat.")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := unusedA1["cat"]; ok {
		t.Error("cat is present in the text but reported unused")
	}
	if _, ok := unusedA1["sit"]; ok {
		t.Error("sit is present in the text but reported unused")
	}
	if _, ok := unusedA1["dog"]; !ok {
		t.Error("dog is absent from the text and should be unused")
	}
}

func TestValidationError_Message(t *testing.T) {
	short := &ValidationError{Words: 9, Min: 10, Max: 10000}
	if !strings.Contains(short.Error(), "too short") {
		t.Errorf("message = %q", short.Error())
	}
	long := &ValidationError{Words: 10001, Min: 10, Max: 10000}
	if !strings.Contains(long.Error(), "too long") {
		t.Errorf("message = %q", long.Error())
	}
}

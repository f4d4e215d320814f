package nlp

import "testing"

func TestIsBeVerb(t *testing.T) {
	cases := []struct {
		tok  Token
		want bool
	}{
		{Token{Surface: "is", Lemma: "be", POS: Verb}, true},
		{Token{Surface: "Were", Lemma: "be", POS: Verb}, true},
		{Token{Surface: "being", Lemma: "being", POS: Verb}, true},
		{Token{Surface: "ran", Lemma: "run", POS: Verb}, false},
		{Token{Surface: "bee", Lemma: "bee", POS: Noun}, false},
	}
	for _, c := range cases {
		if got := c.tok.IsBeVerb(); got != c.want {
			t.Errorf("IsBeVerb(%q) = %v, want %v", c.tok.Surface, got, c.want)
		}
	}
}

func TestIsContentWord(t *testing.T) {
	if !(Token{POS: Noun}).IsContentWord() {
		t.Error("noun should be a content word")
	}
	if !(Token{POS: Adverb}).IsContentWord() {
		t.Error("adverb should be a content word")
	}
	if (Token{POS: Determiner}).IsContentWord() {
		t.Error("determiner should not be a content word")
	}
	if (Token{POS: Auxiliary}).IsContentWord() {
		t.Error("auxiliary should not be a content word")
	}
	// Copula forms are function words even when tagged as plain verbs.
	if (Token{Surface: "is", Lemma: "be", POS: Verb}).IsContentWord() {
		t.Error("copula \"is\" should not be a content word")
	}
	if (Token{Surface: "Were", Lemma: "be", POS: Verb}).IsContentWord() {
		t.Error("copula \"Were\" should not be a content word")
	}
	if !(Token{Surface: "runs", Lemma: "run", POS: Verb}).IsContentWord() {
		t.Error("lexical verb should be a content word")
	}
}

func TestDocumentCounts(t *testing.T) {
	doc := &Document{
		Sentences: []Sentence{
			{Tokens: []Token{{Surface: "Dogs"}, {Surface: "bark"}, {Surface: "."}}},
			{Tokens: []Token{{Surface: "Cats"}, {Surface: "nap"}}},
		},
	}

	if got := doc.TokenCount(); got != 5 {
		t.Errorf("TokenCount = %d, want 5", got)
	}
	if got := doc.SentenceCount(); got != 2 {
		t.Errorf("SentenceCount = %d, want 2", got)
	}
	if got := len(doc.Tokens()); got != 5 {
		t.Errorf("len(Tokens()) = %d, want 5", got)
	}
}

func TestNounPhraseLen(t *testing.T) {
	np := NounPhrase{Sentence: 0, Start: 1, End: 4, Role: RoleSubject}
	if got := np.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}

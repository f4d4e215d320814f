// Package nlp defines the parsed-document model consumed by the metric
// extractors and the Parser interface that produces it. Parsing itself
// (tokenization, sentence splitting, POS tagging) is delegated to a
// backend behind the Parser interface.
package nlp

// POS is a coarse part-of-speech tag, following the Universal POS tag
// set used by common NLP pipelines.
type POS string

const (
	Adjective    POS = "ADJ"
	Adposition   POS = "ADP"
	Adverb       POS = "ADV"
	Auxiliary    POS = "AUX"
	Conjunction  POS = "CONJ"
	Determiner   POS = "DET"
	Interjection POS = "INTJ"
	Noun         POS = "NOUN"
	Numeral      POS = "NUM"
	Particle     POS = "PART"
	Pronoun      POS = "PRON"
	ProperNoun   POS = "PROPN"
	Punctuation  POS = "PUNCT"
	Symbol       POS = "SYM"
	Verb         POS = "VERB"
	Other        POS = "X"
)

// Role describes the grammatical function of a noun-phrase span.
type Role string

const (
	RoleSubject    Role = "nsubj"
	RoleObject     Role = "dobj"
	RolePrepObject Role = "pobj"
	RoleOther      Role = "dep"
)

// beForms covers every inflection of the copula "be".
var beForms = map[string]struct{}{
	"be": {}, "am": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "been": {}, "being": {},
}

// contentPOS is the set of POS tags counted as content words.
var contentPOS = map[POS]struct{}{
	Noun: {}, Verb: {}, Adjective: {}, Adverb: {},
}

// Token is a single parsed token. Lemma is the dictionary base form,
// Tag the fine-grained (Penn Treebank) tag, and Head the index of the
// syntactic head within the sentence (-1 for the root).
type Token struct {
	Surface string
	Lemma   string
	POS     POS
	Tag     string
	Dep     Role
	Head    int
}

// IsContentWord reports whether the token is a noun, verb, adjective,
// or adverb carrying lexical meaning. Auxiliaries and copula forms are
// function words, not content words.
func (t Token) IsContentWord() bool {
	if _, ok := contentPOS[t.POS]; !ok {
		return false
	}
	return !t.IsBeVerb()
}

// IsBeVerb reports whether the token is an inflection of the copula
// "be" in any form.
func (t Token) IsBeVerb() bool {
	if _, ok := beForms[lower(t.Lemma)]; ok {
		return true
	}
	_, ok := beForms[lower(t.Surface)]
	return ok
}

// Sentence is an ordered sequence of tokens.
type Sentence struct {
	Tokens []Token
}

// NounPhrase is a contiguous token span within one sentence, headed by
// a noun, together with its grammatical role. Start and End are token
// indexes into the sentence, half-open.
type NounPhrase struct {
	Sentence int
	Start    int
	End      int
	Role     Role
}

// Len returns the token count of the span.
func (np NounPhrase) Len() int {
	return np.End - np.Start
}

// Document is an immutable parsed text: ordered sentences plus the
// noun-phrase spans detected across them.
type Document struct {
	Sentences   []Sentence
	NounPhrases []NounPhrase
}

// Tokens returns all tokens of the document in order.
func (d *Document) Tokens() []Token {
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// TokenCount returns the total number of tokens.
func (d *Document) TokenCount() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	return n
}

// SentenceCount returns the number of sentences.
func (d *Document) SentenceCount() int {
	return len(d.Sentences)
}

func lower(s string) string {
	// ASCII-only fast path; parsed English tokens never need full
	// Unicode case folding.
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

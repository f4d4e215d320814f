package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/jeduden/cefrize/internal/lexicon"
	"github.com/jeduden/cefrize/internal/nlp"
	"github.com/jeduden/cefrize/internal/readability"
)

// Definition describes a metric and how to compute it. Compute never
// fails: every undefined case (empty text, zero denominators, missing
// dictionary entries) has an explicit fallback.
type Definition struct {
	Name        string
	Description string
	Compute     func(in *Input) float64
}

// registry lists the eight metrics in canonical output order.
var registry = []Definition{
	{
		Name:        "AvrDiff",
		Description: "Mean dictionary difficulty (A1=1..C2=6) of content words.",
		Compute:     avrDiff,
	},
	{
		Name:        "BperA",
		Description: "Ratio of B-level to A-level content words.",
		Compute:     bPerA,
	},
	{
		Name:        "CVV1",
		Description: "Corrected verb variation: verb tokens over sqrt(2*verb types), be-verbs excluded.",
		Compute:     cvv1,
	},
	{
		Name:        "AvrFreqRank",
		Description: "Mean frequency rank of tokens, 3 most infrequent excluded.",
		Compute:     avrFreqRank,
	},
	{
		Name:        "ARI",
		Description: "Automated Readability Index of the raw text.",
		Compute:     func(in *Input) float64 { return readability.Index(in.Text) },
	},
	{
		Name:        "VperSent",
		Description: "Mean verb count per sentence, be-verbs included.",
		Compute:     vPerSent,
	},
	{
		Name:        "POStypes",
		Description: "Mean count of distinct POS tags per sentence.",
		Compute:     posTypes,
	},
	{
		Name:        "LenNP",
		Description: "Mean token length of subject and object noun phrases.",
		Compute:     lenNP,
	},
}

// All returns the eight metric definitions in canonical order.
func All() []Definition {
	return append([]Definition(nil), registry...)
}

// Names returns the metric names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, def := range registry {
		names[i] = def.Name
	}
	return names
}

// Lookup finds a metric by name (case-insensitive).
func Lookup(name string) (Definition, bool) {
	for _, def := range registry {
		if strings.EqualFold(def.Name, name) {
			return def, true
		}
	}
	return Definition{}, false
}

// cvv1 counts verb tokens and distinct verb lemmas, both excluding
// be-verbs. Zero verb types yields 0, not an error.
func cvv1(in *Input) float64 {
	tokens := 0
	types := make(map[string]struct{})
	for _, tok := range in.Doc.Tokens() {
		if tok.POS != nlp.Verb || tok.IsBeVerb() {
			continue
		}
		tokens++
		types[strings.ToLower(tok.Lemma)] = struct{}{}
	}
	if len(types) == 0 {
		return 0
	}
	return float64(tokens) / math.Sqrt(2*float64(len(types)))
}

// bPerA counts content words at B1/B2 against those at A1/A2. When no
// A-level words exist the B count itself is returned, avoiding the
// division by zero without collapsing the signal.
func bPerA(in *Input) float64 {
	var a, b int
	for _, tok := range in.ContentWords() {
		level, ok := in.wordLevel(tok)
		if !ok {
			continue
		}
		switch level {
		case lexicon.A1, lexicon.A2:
			a++
		case lexicon.B1, lexicon.B2:
			b++
		}
	}
	if a == 0 {
		return float64(b)
	}
	return float64(b) / float64(a)
}

// posTypes averages the number of distinct POS tags per sentence,
// excluding punctuation.
func posTypes(in *Input) float64 {
	if in.Doc.SentenceCount() == 0 {
		return 0
	}

	total := 0
	for _, sent := range in.Doc.Sentences {
		seen := make(map[nlp.POS]struct{})
		for _, tok := range sent.Tokens {
			if tok.POS == nlp.Punctuation {
				continue
			}
			seen[tok.POS] = struct{}{}
		}
		total += len(seen)
	}
	return float64(total) / float64(in.Doc.SentenceCount())
}

// avrDiff averages the 1..6 dictionary difficulty over content words.
// Words without a dictionary entry are excluded from numerator and
// denominator alike.
func avrDiff(in *Input) float64 {
	total := 0
	counted := 0
	for _, tok := range in.ContentWords() {
		level, ok := in.wordLevel(tok)
		if !ok {
			continue
		}
		total += level.Rank()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(total) / float64(counted)
}

// avrFreqRank averages frequency ranks over all non-punctuation
// tokens, dropping the 3 most infrequent (highest-rank) ones. Texts
// with 3 or fewer scorable tokens average whatever remains.
func avrFreqRank(in *Input) float64 {
	var ranks []int
	for _, tok := range in.Doc.Tokens() {
		if tok.POS == nlp.Punctuation {
			continue
		}
		ranks = append(ranks, in.Frequencies.Rank(tok.Surface))
	}
	if len(ranks) == 0 {
		return 0
	}

	if len(ranks) > 3 {
		sort.Ints(ranks)
		ranks = ranks[:len(ranks)-3]
	}

	sum := 0
	for _, r := range ranks {
		sum += r
	}
	return float64(sum) / float64(len(ranks))
}

// vPerSent averages verb tokens per sentence. Unlike CVV1, be-verbs
// count.
func vPerSent(in *Input) float64 {
	if in.Doc.SentenceCount() == 0 {
		return 0
	}

	verbs := 0
	for _, tok := range in.Doc.Tokens() {
		if tok.POS == nlp.Verb {
			verbs++
		}
	}
	return float64(verbs) / float64(in.Doc.SentenceCount())
}

// lenNP averages the token length of noun-phrase spans functioning as
// subject or object. No qualifying spans yields 0.
func lenNP(in *Input) float64 {
	total := 0
	count := 0
	for _, np := range in.Doc.NounPhrases {
		if np.Role != nlp.RoleSubject && np.Role != nlp.RoleObject {
			continue
		}
		if np.Len() <= 0 {
			continue
		}
		total += np.Len()
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

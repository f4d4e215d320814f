package prose

import (
	"strings"

	"github.com/jeduden/cefrize/internal/nlp"
)

// coarsePOS maps a Penn Treebank tag to the coarse POS vocabulary of
// the document model.
func coarsePOS(tag, surface string) nlp.POS {
	switch tag {
	case "NN", "NNS":
		return nlp.Noun
	case "NNP", "NNPS":
		return nlp.ProperNoun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return nlp.Verb
	case "MD":
		return nlp.Auxiliary
	case "JJ", "JJR", "JJS":
		return nlp.Adjective
	case "RB", "RBR", "RBS", "WRB":
		return nlp.Adverb
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return nlp.Pronoun
	case "DT", "PDT", "WDT":
		return nlp.Determiner
	case "IN":
		return nlp.Adposition
	case "CC":
		return nlp.Conjunction
	case "CD":
		return nlp.Numeral
	case "TO", "RP", "POS":
		return nlp.Particle
	case "UH":
		return nlp.Interjection
	case "SYM", "$", "#":
		return nlp.Symbol
	case "FW":
		return nlp.Other
	}

	if isPunctTag(tag, surface) {
		return nlp.Punctuation
	}
	return nlp.Other
}

func isPunctTag(tag, surface string) bool {
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "\"", "-LRB-", "-RRB-", "HYPH", "NFP":
		return true
	}
	// Some tokenizers emit the surface itself as the tag for stray
	// punctuation.
	return surface != "" && strings.IndexFunc(surface, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}) < 0 && tag == surface
}

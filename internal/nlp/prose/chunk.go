package prose

import "github.com/jeduden/cefrize/internal/nlp"

// nominal reports whether a token can belong to a noun-phrase span.
func nominal(tok nlp.Token) bool {
	switch tok.POS {
	case nlp.Determiner, nlp.Adjective, nlp.Numeral, nlp.Noun, nlp.ProperNoun, nlp.Pronoun:
		return true
	}
	return tok.Tag == "POS"
}

// headlike reports whether a token can head a noun phrase.
func headlike(tok nlp.Token) bool {
	switch tok.POS {
	case nlp.Noun, nlp.ProperNoun, nlp.Pronoun:
		return true
	}
	return false
}

// nounPhrases detects noun-phrase spans in one sentence and assigns
// each a grammatical role by its position relative to the first verb:
// before it the span is a subject, after it an object, and after a
// preposition a prepositional object. The Sentence index is left for
// the caller to fill.
func nounPhrases(tokens []nlp.Token) []nlp.NounPhrase {
	firstVerb := -1
	for i, tok := range tokens {
		if tok.POS == nlp.Verb || tok.POS == nlp.Auxiliary {
			firstVerb = i
			break
		}
	}

	var spans []nlp.NounPhrase
	i := 0
	for i < len(tokens) {
		if !nominal(tokens[i]) {
			i++
			continue
		}

		// Maximal nominal run starting at i.
		j := i
		for j < len(tokens) && nominal(tokens[j]) {
			j++
		}

		// Trim the run to end at its last head-like token.
		end := -1
		for k := j - 1; k >= i; k-- {
			if headlike(tokens[k]) {
				end = k + 1
				break
			}
		}
		if end < 0 {
			i = j
			continue
		}

		spans = append(spans, nlp.NounPhrase{
			Start: i,
			End:   end,
			Role:  spanRole(tokens, i, end, firstVerb),
		})
		i = j
	}
	return spans
}

func spanRole(tokens []nlp.Token, start, end, firstVerb int) nlp.Role {
	if firstVerb < 0 {
		return nlp.RoleOther
	}
	if end <= firstVerb {
		return nlp.RoleSubject
	}
	if start > 0 && tokens[start-1].POS == nlp.Adposition {
		return nlp.RolePrepObject
	}
	return nlp.RoleObject
}

package prose

import "strings"

// irregularVerbs maps inflected verb forms to their base form.
var irregularVerbs = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"said": "say", "says": "say",
	"made": "make", "making": "make",
	"took": "take", "taken": "take", "taking": "take",
	"came": "come", "coming": "come",
	"saw": "see", "seen": "see", "seeing": "see",
	"got": "get", "gotten": "get", "getting": "get",
	"knew": "know", "known": "know",
	"thought": "think", "found": "find", "gave": "give", "given": "give",
	"giving": "give", "told": "tell", "became": "become", "become": "become",
	"left": "leave", "felt": "feel", "put": "put", "brought": "bring",
	"began": "begin", "begun": "begin", "kept": "keep", "held": "hold",
	"wrote": "write", "written": "write", "writing": "write",
	"stood": "stand", "heard": "hear", "let": "let", "meant": "mean",
	"met": "meet", "ran": "run", "running": "run", "paid": "pay",
	"sat": "sit", "sitting": "sit", "spoke": "speak", "spoken": "speak",
	"lay": "lie", "lain": "lie", "lying": "lie", "led": "lead",
	"read": "read", "grew": "grow", "grown": "grow", "lost": "lose",
	"fell": "fall", "fallen": "fall", "sent": "send", "built": "build",
	"understood": "understand", "drew": "draw", "drawn": "draw",
	"broke": "break", "broken": "break", "spent": "spend",
	"caught": "catch", "bought": "buy", "taught": "teach",
	"ate": "eat", "eaten": "eat", "eating": "eat",
	"sought": "seek", "fought": "fight", "flew": "fly", "flown": "fly",
	"chose": "choose", "chosen": "choose", "rose": "rise", "risen": "rise",
	"wore": "wear", "worn": "wear", "won": "win", "winning": "win",
}

// irregularNouns maps irregular plurals to their singular form.
var irregularNouns = map[string]string{
	"men": "man", "women": "woman", "children": "child",
	"people": "person", "feet": "foot", "teeth": "tooth",
	"mice": "mouse", "geese": "goose", "oxen": "ox",
	"lives": "life", "leaves": "leaf", "knives": "knife",
	"wives": "wife", "halves": "half", "shelves": "shelf",
	"wolves": "wolf", "selves": "self", "phenomena": "phenomenon",
	"criteria": "criterion", "analyses": "analysis", "crises": "crisis",
	"theses": "thesis", "species": "species", "series": "series",
	"data": "data", "media": "media",
}

// irregularAdjectives maps comparative and superlative forms back to
// the base adjective or adverb.
var irregularAdjectives = map[string]string{
	"better": "good", "best": "good",
	"worse": "bad", "worst": "bad",
	"further": "far", "furthest": "far",
	"farther": "far", "farthest": "far",
	"less": "little", "least": "little",
	"more": "more", "most": "most",
}

// eRestore lists stems that take back a trailing "e" after an -ed,
// -ing, -er, or -est suffix is stripped.
var eRestore = map[string]struct{}{
	"lik": {}, "liv": {}, "lov": {}, "mov": {}, "us": {}, "hop": {},
	"chang": {}, "clos": {}, "continu": {}, "decid": {}, "describ": {},
	"arriv": {}, "receiv": {}, "creat": {}, "achiev": {}, "observ": {},
	"increas": {}, "believ": {}, "caus": {}, "provid": {}, "produc": {},
	"reduc": {}, "requir": {}, "involv": {}, "not": {}, "stat": {},
	"balanc": {}, "fluctuat": {}, "accumul": {}, "accumulat": {},
	"distribut": {}, "mitigat": {}, "constitut": {}, "undermin": {},
	"elucidat": {}, "promulgat": {}, "aggregat": {}, "larg": {},
	"nic": {}, "saf": {}, "wid": {}, "lat": {}, "fin": {}, "simpl": {},
}

// Lemma returns the dictionary base form of a surface token given its
// Penn Treebank tag. Rule-based: an irregular-form table first, then
// tag-directed suffix stripping. Unknown shapes fall back to the
// lowercased surface.
func Lemma(surface, tag string) string {
	w := strings.ToLower(surface)
	switch {
	case strings.HasPrefix(tag, "V") || tag == "MD":
		return verbLemma(w)
	case tag == "NNS" || tag == "NNPS":
		return nounLemma(w)
	case tag == "JJR" || tag == "JJS" || tag == "RBR" || tag == "RBS":
		return adjectiveLemma(w)
	default:
		return w
	}
}

func verbLemma(w string) string {
	if base, ok := irregularVerbs[w]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "eed"):
		return w[:len(w)-1]
	case strings.HasSuffix(w, "ed") && len(w) > 3:
		return restore(w[:len(w)-2])
	case strings.HasSuffix(w, "ing") && len(w) > 4:
		return restore(w[:len(w)-3])
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}

func nounLemma(w string) string {
	if base, ok := irregularNouns[w]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"), strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "xes"),
		strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") &&
		!strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}

func adjectiveLemma(w string) string {
	if base, ok := irregularAdjectives[w]; ok {
		return base
	}

	switch {
	case strings.HasSuffix(w, "iest") && len(w) > 5:
		return w[:len(w)-4] + "y"
	case strings.HasSuffix(w, "ier") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "est") && len(w) > 4:
		return restore(w[:len(w)-3])
	case strings.HasSuffix(w, "er") && len(w) > 3:
		return restore(w[:len(w)-2])
	}
	return w
}

// restore fixes a stripped stem: un-doubles a doubled final consonant
// (stopp -> stop) and restores a dropped "e" for known stems
// (lik -> like).
func restore(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	if _, ok := eRestore[stem]; ok {
		return stem + "e"
	}
	return stem
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

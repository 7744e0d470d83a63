package grammar

import (
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

var irregularPresent = map[string]string{
	"be":   "is",
	"have": "has",
	"do":   "does",
}

// Conjugate returns the third-person singular present form of verb.
// Forms that already carry the -s ending of a known verb are kept. In a
// phrasal verb only the first word is conjugated: "take_off" -> "takes off".
func (n *Normalizer) Conjugate(verb string) string {
	verb = domain.NormalizeText(domain.DisplayLexeme(verb))
	if verb == "" {
		return ""
	}
	if first, rest, ok := strings.Cut(verb, " "); ok {
		return n.Conjugate(first) + " " + rest
	}

	if len(verb) > 1 && strings.HasSuffix(verb, "s") && n.isVerb(verb[:len(verb)-1]) {
		return verb
	}

	lemma := domain.DisplayLexeme(n.lex.Lemmatize(verb, domain.PartOfSpeechVerb))
	if form, ok := irregularPresent[lemma]; ok {
		return form
	}

	switch {
	case endsWithConsonantThen(lemma, 'y'):
		return lemma[:len(lemma)-1] + "ies"
	case hasAnySuffix(lemma, "s", "sh", "ch", "x", "z"):
		return lemma + "es"
	case endsWithConsonantThen(lemma, 'o'):
		return lemma + "es"
	default:
		return lemma + "s"
	}
}

func endsWithConsonantThen(word string, last byte) bool {
	n := len(word)
	return n > 1 && word[n-1] == last && !strings.ContainsRune("aeiou", rune(word[n-2]))
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

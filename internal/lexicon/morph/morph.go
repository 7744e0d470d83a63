// Package morph reduces inflected word forms to lemmas known to the lexical
// graph. Irregular forms come from the golem English dictionary; regular
// forms are handled by WordNet-style suffix detachment per part of speech.
package morph

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// LemmaIndex answers exact lemma membership. Implemented by *wordnet.Graph.
type LemmaIndex interface {
	HasLemma(lemma string, pos domain.PartOfSpeech) bool
}

// IrregularSource lists base-form candidates for an inflected word.
type IrregularSource interface {
	Lemmas(word string) []string
}

type detachment struct {
	suffix      string
	replacement string
}

// Order matters: candidates are produced in rule order and the first
// matching round wins.
var detachments = map[domain.PartOfSpeech][]detachment{
	domain.PartOfSpeechNoun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	domain.PartOfSpeechVerb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	domain.PartOfSpeechAdjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// Lemmatizer is safe for concurrent use.
type Lemmatizer struct {
	index     LemmaIndex
	irregular IrregularSource
}

// New builds a Lemmatizer over index using the bundled English irregular-form dictionary.
func New(index LemmaIndex) (*Lemmatizer, error) {
	g, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return NewWithSource(index, g), nil
}

// NewWithSource builds a Lemmatizer with an explicit irregular-form source.
// A nil source disables irregular lookup.
func NewWithSource(index LemmaIndex, irregular IrregularSource) *Lemmatizer {
	return &Lemmatizer{index: index, irregular: irregular}
}

// Forms returns the lemmas of word for pos that exist in the index, in
// candidate order. The word itself is included when it is a lemma. Returns
// nil when nothing matches.
func (l *Lemmatizer) Forms(word string, pos domain.PartOfSpeech) []string {
	word = domain.NormalizeLexeme(word)
	if word == "" {
		return nil
	}

	if !l.index.HasLemma(word, pos) {
		if irregular := l.irregularForms(word); len(irregular) > 0 {
			if found := l.filter(append([]string{word}, irregular...), pos); len(found) > 0 {
				return found
			}
		}
	}

	forms := detach([]string{word}, pos)
	if found := l.filter(append([]string{word}, forms...), pos); len(found) > 0 {
		return found
	}
	for len(forms) > 0 {
		forms = detach(forms, pos)
		if found := l.filter(forms, pos); len(found) > 0 {
			return found
		}
	}
	return nil
}

// Lemmatize returns the shortest lemma of word for pos, or the normalized
// word unchanged when it has none.
func (l *Lemmatizer) Lemmatize(word string, pos domain.PartOfSpeech) string {
	forms := l.Forms(word, pos)
	if len(forms) == 0 {
		return domain.NormalizeLexeme(word)
	}
	best := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(best) {
			best = f
		}
	}
	return best
}

func (l *Lemmatizer) irregularForms(word string) []string {
	if l.irregular == nil {
		return nil
	}
	var result []string
	for _, lemma := range l.irregular.Lemmas(word) {
		lemma = domain.NormalizeLexeme(lemma)
		if lemma != "" && lemma != word {
			result = append(result, lemma)
		}
	}
	return result
}

func (l *Lemmatizer) filter(forms []string, pos domain.PartOfSpeech) []string {
	var result []string
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if l.index.HasLemma(f, pos) {
			result = append(result, f)
		}
	}
	return result
}

func detach(forms []string, pos domain.PartOfSpeech) []string {
	rules := detachments[pos]
	if pos == domain.PartOfSpeechSatellite {
		rules = detachments[domain.PartOfSpeechAdjective]
	}

	var result []string
	seen := make(map[string]struct{})
	for _, f := range forms {
		for _, r := range rules {
			if len(f) <= len(r.suffix) || f[len(f)-len(r.suffix):] != r.suffix {
				continue
			}
			candidate := f[:len(f)-len(r.suffix)] + r.replacement
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			result = append(result, candidate)
		}
	}
	return result
}

package pun

import (
	"slices"
	"strings"
	"unicode"

	"github.com/orsinium-labs/stopwords"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// SkipReason names the precondition a candidate failed.
type SkipReason string

const (
	SkipNoHomophone SkipReason = "no_homophone"
	SkipNoHypernym  SkipReason = "no_hypernym"
	SkipNoMeronym   SkipReason = "no_meronym"
)

// meronymOrder is the lookup order for the question's predicate.
var meronymOrder = []domain.Relation{
	domain.RelationMemberMeronym,
	domain.RelationSubstanceMeronym,
	domain.RelationPartMeronym,
}

var english = stopwords.MustGet("en")

// assemble fills the riddle template for one compound, or reports which
// precondition failed.
func (s *Service) assemble(c domain.Compound) (domain.Riddle, SkipReason) {
	homophone, ok := s.lex.Homophone(c.Head)
	if !ok {
		return domain.Riddle{}, SkipNoHomophone
	}
	subject, ok := s.hypernym(c.Lemma)
	if !ok {
		return domain.Riddle{}, SkipNoHypernym
	}
	predicate, ok := s.meronym(homophone)
	if !ok {
		return domain.Riddle{}, SkipNoMeronym
	}

	return domain.Riddle{
		Subject:    subject,
		Predicate:  predicate,
		VerbPhrase: s.grammar.VerbPhrase(predicate),
		Homophone:  homophone,
		Modifier:   c.Modifier,
		Compound:   c,
	}, ""
}

// hypernym returns the head lemma of the first hypernym of the word's first sense.
func (s *Service) hypernym(word string) (string, bool) {
	senses := s.lex.Synsets(word, "")
	if len(senses) == 0 {
		return "", false
	}
	parents := s.lex.Related(senses[0], domain.RelationHypernym)
	if len(parents) == 0 {
		return "", false
	}
	lemma := parents[0].FirstLemma()
	return lemma, lemma != ""
}

// meronym finds something the word "has": the first member, substance or
// part meronym across its senses, else a content word of its first
// definition that shares a sense with it.
func (s *Service) meronym(word string) (string, bool) {
	senses := s.lex.Synsets(word, "")
	if len(senses) == 0 {
		return "", false
	}

	for _, rel := range meronymOrder {
		for _, sense := range senses {
			if parts := s.lex.Related(sense, rel); len(parts) > 0 {
				if lemma := parts[0].FirstLemma(); lemma != "" {
					return lemma, true
				}
			}
		}
	}

	return s.definitionWord(word, senses)
}

func (s *Service) definitionWord(word string, senses []*domain.Synset) (string, bool) {
	ids := synsetIDs(senses)
	for _, token := range strings.Fields(stripPunct(senses[0].Definition)) {
		token = strings.ToLower(token)
		if token == word || !domain.IsAlphabetic(token) || english.Contains(token) {
			continue
		}
		other := synsetIDs(s.lex.Synsets(token, ""))
		if sharesAny(ids, other) && !slices.Equal(ids, other) {
			return token, true
		}
	}
	return "", false
}

func stripPunct(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, text)
}

func synsetIDs(senses []*domain.Synset) []string {
	ids := make([]string, len(senses))
	for i, s := range senses {
		ids[i] = s.ID
	}
	return ids
}

func sharesAny(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

package pun

import (
	"unicode/utf8"

	"github.com/heartmarshall/punsmith/internal/domain"
)

const relatedSenses = 3

var (
	meronymRelations = []domain.Relation{
		domain.RelationPartMeronym,
		domain.RelationMemberMeronym,
		domain.RelationSubstanceMeronym,
	}
	holonymRelations = []domain.Relation{
		domain.RelationPartHolonym,
		domain.RelationMemberHolonym,
		domain.RelationSubstanceHolonym,
	}
)

// RelatedWords expands theme through its top noun senses: synonyms,
// hypernyms two levels up, hyponyms, meronyms and holonyms. The theme comes
// first; expansions keep discovery order and exclude multi-word terms and
// terms of two letters or fewer.
func (s *Service) RelatedWords(theme string) []string {
	theme = domain.NormalizeText(theme)
	if theme == "" {
		return nil
	}

	result := []string{theme}
	seen := map[string]struct{}{theme: {}}
	add := func(synsets ...*domain.Synset) {
		for _, syn := range synsets {
			for _, lemma := range syn.Lemmas {
				w := domain.NormalizeText(lemma)
				if _, dup := seen[w]; dup {
					continue
				}
				seen[w] = struct{}{}
				if domain.IsMultiWord(w) || utf8.RuneCountInString(w) <= 2 {
					continue
				}
				result = append(result, w)
			}
		}
	}

	for _, sense := range head(s.lex.Synsets(theme, domain.PartOfSpeechNoun), relatedSenses) {
		add(sense)
		for _, parent := range s.lex.Related(sense, domain.RelationHypernym) {
			add(parent)
			add(s.lex.Related(parent, domain.RelationHypernym)...)
		}
		add(s.lex.Related(sense, domain.RelationHyponym)...)
		add(s.lex.Related(sense, meronymRelations...)...)
		add(s.lex.Related(sense, holonymRelations...)...)
	}

	return result
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}

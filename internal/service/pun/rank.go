package pun

import (
	"context"
	"slices"

	"github.com/heartmarshall/punsmith/internal/domain"
)

const (
	themeRelevance   = 1.0
	relatedRelevance = 0.9
	indirectDiscount = 0.8

	cancelCheckEvery = 256
)

// ScoredCandidate is a compound with its relevance to a theme.
type ScoredCandidate struct {
	Compound  domain.Compound
	Relevance float64
}

// DirectMatches returns, in enumeration order, every compound whose head or
// modifier equals the theme or one of the leading related words.
func (s *Service) DirectMatches(theme string, related []string) []domain.Compound {
	theme = domain.NormalizeText(theme)
	targets := map[string]struct{}{theme: {}}
	for _, w := range head(related, s.cfg.RelatedDirect) {
		targets[w] = struct{}{}
	}

	var matches []domain.Compound
	for _, c := range s.lex.Compounds() {
		_, headHit := targets[c.Head]
		_, modHit := targets[c.Modifier]
		if headHit || modHit {
			matches = append(matches, c)
		}
	}
	return matches
}

// Rank scores at most ScanCap compounds against theme and returns those at
// or above the relevance floor, best first. Equal scores keep enumeration
// order. The second return value is the number of compounds examined.
func (s *Service) Rank(ctx context.Context, theme string, related []string) ([]ScoredCandidate, int, error) {
	theme = domain.NormalizeText(theme)
	compounds := head(s.lex.Compounds(), s.cfg.ScanCap)

	relatedSet := make(map[string]struct{}, len(related))
	for _, w := range related {
		relatedSet[w] = struct{}{}
	}
	similarTo := head(related, s.cfg.RelatedSimilar)

	var ranked []ScoredCandidate
	for i, c := range compounds {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, i, err
			}
		}
		score := s.relevance(theme, c, relatedSet, similarTo)
		if score >= s.cfg.RelevanceFloor {
			ranked = append(ranked, ScoredCandidate{Compound: c, Relevance: score})
		}
	}

	slices.SortStableFunc(ranked, func(a, b ScoredCandidate) int {
		switch {
		case a.Relevance > b.Relevance:
			return -1
		case a.Relevance < b.Relevance:
			return 1
		default:
			return 0
		}
	})
	return ranked, len(compounds), nil
}

// relevance is the best score over the compound's parts: an exact theme
// match, a related word, or the similarity to the theme or to a leading
// related word (discounted).
func (s *Service) relevance(theme string, c domain.Compound, related map[string]struct{}, similarTo []string) float64 {
	best := 0.0
	for _, part := range c.Parts() {
		if part == theme {
			return themeRelevance
		}
		// Similarity never reaches relatedRelevance, so there is nothing
		// left to compute for this part.
		if _, ok := related[part]; ok {
			best = max(best, relatedRelevance)
			continue
		}
		best = max(best, s.scorer.Similarity(theme, part))
		for _, w := range similarTo {
			best = max(best, indirectDiscount*s.scorer.Similarity(w, part))
		}
	}
	return best
}

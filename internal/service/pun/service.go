// Package pun finds compound nouns whose first part has a homophone and
// turns them into "What do you call a ...?" riddles.
package pun

import (
	"log/slog"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
)

type lexicon interface {
	Synsets(word string, pos domain.PartOfSpeech) []*domain.Synset
	Related(s *domain.Synset, rels ...domain.Relation) []*domain.Synset
	Compounds() []domain.Compound
	Homophone(word string) (string, bool)
}

type scorer interface {
	Similarity(a, b string) float64
}

type normalizer interface {
	VerbPhrase(word string) string
}

// Service generates riddles. It holds no per-call state; its normalizer
// owns the only caches.
type Service struct {
	log     *slog.Logger
	lex     lexicon
	scorer  scorer
	grammar normalizer
	cfg     config.GeneratorConfig
}

// NewService creates a new pun service.
func NewService(logger *slog.Logger, lex lexicon, scorer scorer, grammar normalizer, cfg config.GeneratorConfig) *Service {
	return &Service{
		log:     logger.With("service", "pun"),
		lex:     lex,
		scorer:  scorer,
		grammar: grammar,
		cfg:     cfg,
	}
}

// IsRelated reports whether two words score at or above the relevance floor.
func (s *Service) IsRelated(a, b string) bool {
	return s.scorer.Similarity(a, b) >= s.cfg.RelevanceFloor
}

// Package similarity scores how closely two words are related by combining
// a hypernym-path signal, an information-content signal and a shared
// hypernym signal.
package similarity

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/punsmith/internal/domain"
)

const (
	pathSenses    = 3
	overlapSenses = 2

	pathWeight    = 0.4
	icWeight      = 0.3
	overlapWeight = 0.3

	// icScale normalizes the information-content distance. Empirical.
	icScale = 10.0

	sharedParentScore      = 0.6
	sharedGrandparentScore = 0.4

	defaultSenseCacheSize = 4096
)

type lexicon interface {
	Synsets(word string, pos domain.PartOfSpeech) []*domain.Synset
	Related(s *domain.Synset, rels ...domain.Relation) []*domain.Synset
	PathSimilarity(a, b *domain.Synset) (float64, bool)
	Frequency(word string) (int64, bool)
	CorpusSize() int64
}

// Breakdown holds the individual signals behind a similarity score.
type Breakdown struct {
	Path     float64
	IC       float64
	Overlap  float64
	Combined float64
}

// Scorer is safe for concurrent use.
type Scorer struct {
	lex    lexicon
	senses *lru.Cache[string, []*domain.Synset]
}

// NewScorer creates a Scorer. cacheSize bounds the memo of noun senses per
// word; a non-positive value selects the default.
func NewScorer(lex lexicon, cacheSize int) (*Scorer, error) {
	if cacheSize <= 0 {
		cacheSize = defaultSenseCacheSize
	}
	cache, err := lru.New[string, []*domain.Synset](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("sense cache: %w", err)
	}
	return &Scorer{lex: lex, senses: cache}, nil
}

// Similarity returns a score in [0, 1]. Empty input scores 0.
func (s *Scorer) Similarity(a, b string) float64 {
	return s.Explain(a, b).Combined
}

// Explain returns the score together with its signals.
func (s *Scorer) Explain(a, b string) Breakdown {
	a, b = domain.NormalizeText(a), domain.NormalizeText(b)
	if a == "" || b == "" {
		return Breakdown{}
	}
	// The overlap signal stops at the first qualifying pair, so the pair
	// order has to be fixed for the score to be symmetric.
	if b < a {
		a, b = b, a
	}

	sensesA, sensesB := s.nounSenses(a), s.nounSenses(b)

	bd := Breakdown{
		Path:    s.pathSignal(sensesA, sensesB),
		IC:      s.icSignal(a, b),
		Overlap: s.overlapSignal(sensesA, sensesB),
	}
	bd.Combined = min(pathWeight*bd.Path+icWeight*bd.IC+overlapWeight*bd.Overlap, 1.0)
	return bd
}

func (s *Scorer) nounSenses(word string) []*domain.Synset {
	if cached, ok := s.senses.Get(word); ok {
		return cached
	}
	senses := s.lex.Synsets(word, domain.PartOfSpeechNoun)
	s.senses.Add(word, senses)
	return senses
}

func (s *Scorer) pathSignal(a, b []*domain.Synset) float64 {
	best := 0.0
	for _, sa := range head(a, pathSenses) {
		for _, sb := range head(b, pathSenses) {
			if sim, ok := s.lex.PathSimilarity(sa, sb); ok && sim > best {
				best = sim
			}
		}
	}
	return best
}

func (s *Scorer) icSignal(a, b string) float64 {
	total := s.lex.CorpusSize()
	if total <= 0 {
		return 0
	}
	dist := math.Abs(s.informationContent(a, total) - s.informationContent(b, total))
	return max(0, 1-dist/icScale)
}

// informationContent is -ln(p(word)); unseen words count once.
func (s *Scorer) informationContent(word string, total int64) float64 {
	freq, ok := s.lex.Frequency(word)
	if !ok || freq <= 0 {
		freq = 1
	}
	return -math.Log(float64(freq) / float64(total))
}

func (s *Scorer) overlapSignal(a, b []*domain.Synset) float64 {
	for _, sa := range head(a, overlapSenses) {
		for _, sb := range head(b, overlapSenses) {
			parentsA := s.lex.Related(sa, domain.RelationHypernym)
			parentsB := s.lex.Related(sb, domain.RelationHypernym)
			if intersects(parentsA, parentsB) {
				return sharedParentScore
			}
			if intersects(s.parents(parentsA), s.parents(parentsB)) {
				return sharedGrandparentScore
			}
		}
	}
	return 0
}

func (s *Scorer) parents(synsets []*domain.Synset) []*domain.Synset {
	var result []*domain.Synset
	for _, syn := range synsets {
		result = append(result, s.lex.Related(syn, domain.RelationHypernym)...)
	}
	return result
}

func intersects(a, b []*domain.Synset) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, s := range a {
		ids[s.ID] = struct{}{}
	}
	for _, s := range b {
		if _, ok := ids[s.ID]; ok {
			return true
		}
	}
	return false
}

func head(s []*domain.Synset, n int) []*domain.Synset {
	if len(s) > n {
		return s[:n]
	}
	return s
}

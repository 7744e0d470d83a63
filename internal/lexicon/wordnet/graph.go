// Package wordnet holds the in-memory lexical graph built from an Open
// English WordNet JSON release: synsets, their semantic relations, the
// lemma index in sense order and the sense-level derivation links.
//
// A Graph is read-only after Build and safe for concurrent readers.
package wordnet

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// DefaultPathCacheSize bounds the memo of hypernym distances used by PathSimilarity.
const DefaultPathCacheSize = 8192

type lemmaKey struct {
	lemma string
	pos   domain.PartOfSpeech
}

type senseKey struct {
	lemma    string
	synsetID string
}

// Stats holds graph statistics for logging.
type Stats struct {
	Synsets        int
	NounSynsets    int
	Lemmas         int
	Compounds      int
	LemmaRelations int
	DanglingLinks  int
}

// Graph is the lexical knowledge graph.
type Graph struct {
	synsets   map[string]*domain.Synset
	index     map[lemmaKey][]string
	lemmaRels map[senseKey][]domain.LemmaRef
	compounds []domain.Compound
	ancestors *lru.Cache[string, map[string]int]
	stats     Stats
}

// Stats returns counters collected while building the graph.
func (g *Graph) Stats() Stats {
	return g.stats
}

// Synset returns the synset with the given ID.
func (g *Graph) Synset(id string) (*domain.Synset, bool) {
	s, ok := g.synsets[id]
	return s, ok
}

// SynsetsForLemma returns the synsets of an exact lemma in sense order.
// An empty pos means every part of speech (noun, verb, adjective, adverb);
// adjective lookups include satellites. Unknown lemmas yield nil.
func (g *Graph) SynsetsForLemma(lemma string, pos domain.PartOfSpeech) []*domain.Synset {
	var result []*domain.Synset
	for _, p := range expandPOS(pos) {
		for _, id := range g.index[lemmaKey{lemma: lemma, pos: p}] {
			if s, ok := g.synsets[id]; ok {
				result = append(result, s)
			}
		}
	}
	return result
}

// HasLemma reports whether lemma has at least one sense with the given part of speech.
func (g *Graph) HasLemma(lemma string, pos domain.PartOfSpeech) bool {
	for _, p := range expandPOS(pos) {
		if len(g.index[lemmaKey{lemma: lemma, pos: p}]) > 0 {
			return true
		}
	}
	return false
}

// Related resolves the synsets reachable from s through each relation in
// rels, concatenated in the order given.
func (g *Graph) Related(s *domain.Synset, rels ...domain.Relation) []*domain.Synset {
	if s == nil {
		return nil
	}
	var result []*domain.Synset
	for _, rel := range rels {
		for _, id := range s.Targets(rel) {
			if target, ok := g.synsets[id]; ok {
				result = append(result, target)
			}
		}
	}
	return result
}

// LemmaRelations returns the sense-level links of lemma in the given synset.
func (g *Graph) LemmaRelations(lemma, synsetID string) []domain.LemmaRef {
	return g.lemmaRels[senseKey{lemma: lemma, synsetID: synsetID}]
}

// Compounds returns every two-part noun lemma in synset enumeration order,
// each lemma once. The slice is shared; callers must not modify it.
func (g *Graph) Compounds() []domain.Compound {
	return g.compounds
}

// PathSimilarity scores two synsets by the shortest path between them that
// passes through a common hypernym: 1/(distance+1). The second return value
// is false when the synsets share no ancestor.
func (g *Graph) PathSimilarity(a, b *domain.Synset) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if a.ID == b.ID {
		return 1, true
	}

	da := g.hypernymDistances(a)
	db := g.hypernymDistances(b)
	if len(db) < len(da) {
		da, db = db, da
	}

	best := -1
	for id, d1 := range da {
		d2, ok := db[id]
		if !ok {
			continue
		}
		if best < 0 || d1+d2 < best {
			best = d1 + d2
		}
	}
	if best < 0 {
		return 0, false
	}
	return 1 / float64(best+1), true
}

// hypernymDistances maps every ancestor of s (s included, at 0) to its
// minimal distance following hypernym and instance-hypernym links.
func (g *Graph) hypernymDistances(s *domain.Synset) map[string]int {
	if dist, ok := g.ancestors.Get(s.ID); ok {
		return dist
	}

	dist := map[string]int{s.ID: 0}
	queue := []string{s.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		cur, ok := g.synsets[id]
		if !ok {
			continue
		}
		for _, rel := range []domain.Relation{domain.RelationHypernym, domain.RelationInstanceHypernym} {
			for _, parent := range cur.Targets(rel) {
				if _, seen := dist[parent]; seen {
					continue
				}
				dist[parent] = dist[id] + 1
				queue = append(queue, parent)
			}
		}
	}

	g.ancestors.Add(s.ID, dist)
	return dist
}

func expandPOS(pos domain.PartOfSpeech) []domain.PartOfSpeech {
	switch pos {
	case "":
		return domain.AllPartsOfSpeech
	case domain.PartOfSpeechAdjective:
		return []domain.PartOfSpeech{domain.PartOfSpeechAdjective, domain.PartOfSpeechSatellite}
	default:
		return []domain.PartOfSpeech{pos}
	}
}

func newAncestorCache(size int) (*lru.Cache[string, map[string]int], error) {
	if size <= 0 {
		size = DefaultPathCacheSize
	}
	cache, err := lru.New[string, map[string]int](size)
	if err != nil {
		return nil, fmt.Errorf("create path cache: %w", err)
	}
	return cache, nil
}

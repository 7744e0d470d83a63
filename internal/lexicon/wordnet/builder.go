package wordnet

import (
	"slices"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

type senseRecord struct {
	id       string
	lemma    string
	synsetID string
}

type lemmaLink struct {
	sourceSense string
	targetSense string
	rel         domain.LemmaRelation
}

// Builder accumulates synsets, senses and sense links, then produces a Graph.
// Senses added explicitly keep their insertion order (WordNet sense order);
// synset members without an explicit sense are indexed after them, by synset ID.
type Builder struct {
	synsets map[string]*domain.Synset
	senses  []senseRecord
	links   []lemmaLink
	opts    options
}

type options struct {
	pathCacheSize int
}

// Option configures a Graph built by Builder.
type Option func(*options)

// WithPathCacheSize bounds the hypernym distance memo.
func WithPathCacheSize(n int) Option {
	return func(o *options) {
		o.pathCacheSize = n
	}
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		synsets: make(map[string]*domain.Synset),
		opts:    options{pathCacheSize: DefaultPathCacheSize},
	}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// AddSynset registers a synset. Lemmas are normalized to lexemes; a later
// synset with the same ID replaces the earlier one.
func (b *Builder) AddSynset(s domain.Synset) {
	lemmas := make([]string, 0, len(s.Lemmas))
	for _, l := range s.Lemmas {
		if n := domain.NormalizeLexeme(l); n != "" {
			lemmas = append(lemmas, n)
		}
	}

	rels := make(map[domain.Relation][]string, len(s.Relations))
	for rel, targets := range s.Relations {
		if len(targets) > 0 {
			rels[rel] = slices.Clone(targets)
		}
	}

	pos := s.PartOfSpeech
	if !pos.IsValid() {
		pos = posFromSynsetID(s.ID)
	}

	b.synsets[s.ID] = &domain.Synset{
		ID:           s.ID,
		PartOfSpeech: pos,
		Lemmas:       lemmas,
		Definition:   strings.TrimSpace(s.Definition),
		Relations:    rels,
	}
}

// AddSense records that lemma has a sense in synsetID. senseID may be empty
// when no sense-level links point at it.
func (b *Builder) AddSense(lemma, synsetID, senseID string) {
	b.senses = append(b.senses, senseRecord{
		id:       senseID,
		lemma:    domain.NormalizeLexeme(lemma),
		synsetID: synsetID,
	})
}

// AddLemmaRelation links two senses by a lexical relation.
func (b *Builder) AddLemmaRelation(sourceSenseID string, rel domain.LemmaRelation, targetSenseID string) {
	b.links = append(b.links, lemmaLink{sourceSense: sourceSenseID, targetSense: targetSenseID, rel: rel})
}

// Build produces the Graph. Missing inverse relations (hyponyms, holonyms)
// are derived from their forward direction.
func (b *Builder) Build() (*Graph, error) {
	cache, err := newAncestorCache(b.opts.pathCacheSize)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		synsets:   b.synsets,
		index:     make(map[lemmaKey][]string),
		lemmaRels: make(map[senseKey][]domain.LemmaRef),
		ancestors: cache,
	}

	ids := make([]string, 0, len(b.synsets))
	for id := range b.synsets {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	b.addInverseRelations(ids)

	// Step 1: lemma index from explicit senses, then from synset members.
	indexed := make(map[senseKey]bool)
	senseByID := make(map[string]senseKey)
	addIndex := func(lemma, synsetID string) bool {
		s, ok := b.synsets[synsetID]
		if !ok {
			g.stats.DanglingLinks++
			return false
		}
		key := senseKey{lemma: lemma, synsetID: synsetID}
		if indexed[key] {
			return true
		}
		indexed[key] = true
		lk := lemmaKey{lemma: lemma, pos: s.PartOfSpeech}
		g.index[lk] = append(g.index[lk], synsetID)
		return true
	}
	for _, sense := range b.senses {
		if addIndex(sense.lemma, sense.synsetID) && sense.id != "" {
			senseByID[sense.id] = senseKey{lemma: sense.lemma, synsetID: sense.synsetID}
		}
	}
	for _, id := range ids {
		for _, lemma := range b.synsets[id].Lemmas {
			addIndex(lemma, id)
		}
	}

	// Step 2: sense-level links.
	for _, link := range b.links {
		src, ok := senseByID[link.sourceSense]
		if !ok {
			g.stats.DanglingLinks++
			continue
		}
		dst, ok := senseByID[link.targetSense]
		if !ok {
			g.stats.DanglingLinks++
			continue
		}
		target := b.synsets[dst.synsetID]
		g.lemmaRels[src] = append(g.lemmaRels[src], domain.LemmaRef{
			Lemma:        dst.lemma,
			SynsetID:     dst.synsetID,
			PartOfSpeech: target.PartOfSpeech,
			Relation:     link.rel,
		})
		g.stats.LemmaRelations++
	}

	// Step 3: compound nouns in synset enumeration order.
	seen := make(map[string]bool)
	for _, id := range ids {
		s := b.synsets[id]
		if s.PartOfSpeech != domain.PartOfSpeechNoun {
			continue
		}
		g.stats.NounSynsets++
		for _, lemma := range s.Lemmas {
			if seen[lemma] {
				continue
			}
			if c, ok := domain.SplitCompound(lemma); ok {
				seen[lemma] = true
				g.compounds = append(g.compounds, c)
			}
		}
	}

	g.stats.Synsets = len(b.synsets)
	g.stats.Lemmas = len(g.index)
	g.stats.Compounds = len(g.compounds)
	return g, nil
}

func (b *Builder) addInverseRelations(ids []string) {
	for _, id := range ids {
		s := b.synsets[id]
		for _, rel := range domain.SynsetRelations {
			inv := rel.Inverse()
			for _, targetID := range s.Relations[rel] {
				target, ok := b.synsets[targetID]
				if !ok || slices.Contains(target.Relations[inv], id) {
					continue
				}
				target.Relations[inv] = append(target.Relations[inv], id)
			}
		}
	}
}

// posFromSynsetID reads the trailing part-of-speech code of OEWN IDs like "oewn-02084071-n".
func posFromSynsetID(id string) domain.PartOfSpeech {
	if i := strings.LastIndexByte(id, '-'); i >= 0 && i < len(id)-1 {
		if p := domain.PartOfSpeech(id[i+1:]); p.IsValid() {
			return p
		}
	}
	return domain.PartOfSpeechNoun
}

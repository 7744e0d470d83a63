// Package lexicon combines the lexical graph, the lemmatizer, the
// pronunciation dictionary and the optional corpus frequency list behind
// one read-only facade. Lookups never fail: a miss is an empty result.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
	"github.com/heartmarshall/punsmith/internal/lexicon/cmu"
	"github.com/heartmarshall/punsmith/internal/lexicon/frequency"
	"github.com/heartmarshall/punsmith/internal/lexicon/morph"
	"github.com/heartmarshall/punsmith/internal/lexicon/wordnet"
)

// Lexicon is safe for concurrent readers.
type Lexicon struct {
	graph *wordnet.Graph
	morph *morph.Lemmatizer
	pron  *cmu.Dictionary
	freq  *frequency.Table
}

// New assembles a Lexicon from already loaded parts. freq may be nil.
func New(graph *wordnet.Graph, lemmatizer *morph.Lemmatizer, pron *cmu.Dictionary, freq *frequency.Table) *Lexicon {
	return &Lexicon{graph: graph, morph: lemmatizer, pron: pron, freq: freq}
}

// Load reads every configured resource concurrently. Any failure is
// reported as domain.ErrLexiconUnavailable wrapping the cause.
func Load(ctx context.Context, cfg config.LexiconConfig, logger *slog.Logger) (*Lexicon, error) {
	logger = logger.With("component", "lexicon")

	var (
		graph *wordnet.Graph
		pron  *cmu.Dictionary
		freq  *frequency.Table
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		graph, err = wordnet.Load(cfg.WordNetDir, wordnet.WithPathCacheSize(cfg.PathCacheSize))
		if err != nil {
			return fmt.Errorf("%w: wordnet %s: %w", domain.ErrLexiconUnavailable, cfg.WordNetDir, err)
		}
		s := graph.Stats()
		logger.Info("wordnet loaded",
			slog.Int("synsets", s.Synsets),
			slog.Int("noun_synsets", s.NounSynsets),
			slog.Int("lemmas", s.Lemmas),
			slog.Int("compounds", s.Compounds),
			slog.Int("lemma_relations", s.LemmaRelations),
			slog.Int("dangling_links", s.DanglingLinks),
		)
		return ctx.Err()
	})

	g.Go(func() error {
		var err error
		pron, err = cmu.Load(cfg.CMUDictPath)
		if err != nil {
			return fmt.Errorf("%w: cmudict %s: %w", domain.ErrLexiconUnavailable, cfg.CMUDictPath, err)
		}
		s := pron.Stats()
		logger.Info("pronunciations loaded",
			slog.Int("lines", s.TotalLines),
			slog.Int("parsed", s.ParsedLines),
			slog.Int("words", s.UniqueWords),
		)
		return ctx.Err()
	})

	if cfg.FrequencyPath != "" {
		g.Go(func() error {
			var err error
			freq, err = frequency.Load(cfg.FrequencyPath)
			if err != nil {
				return fmt.Errorf("%w: frequency %s: %w", domain.ErrLexiconUnavailable, cfg.FrequencyPath, err)
			}
			logger.Info("frequency list loaded",
				slog.Int("words", freq.Len()),
				slog.Int64("tokens", freq.Total()),
			)
			return ctx.Err()
		})
	} else {
		logger.Warn("no frequency list configured, information content signal disabled")
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lemmatizer, err := morph.New(graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLexiconUnavailable, err)
	}

	return New(graph, lemmatizer, pron, freq), nil
}

// Synsets returns the synsets of word for pos in sense order, looking
// through inflected forms. An empty pos means every part of speech.
func (l *Lexicon) Synsets(word string, pos domain.PartOfSpeech) []*domain.Synset {
	word = domain.NormalizeLexeme(word)
	if word == "" {
		return nil
	}

	posList := []domain.PartOfSpeech{pos}
	if pos == "" {
		posList = searchOrder
	}

	var result []*domain.Synset
	seen := make(map[string]struct{})
	for _, p := range posList {
		for _, form := range l.morph.Forms(word, p) {
			for _, s := range l.graph.SynsetsForLemma(form, p) {
				if _, dup := seen[s.ID]; dup {
					continue
				}
				seen[s.ID] = struct{}{}
				result = append(result, s)
			}
		}
	}
	return result
}

// searchOrder is the part-of-speech order for untyped lookups. Adjective
// lookups already include satellites.
var searchOrder = []domain.PartOfSpeech{
	domain.PartOfSpeechNoun,
	domain.PartOfSpeechVerb,
	domain.PartOfSpeechAdjective,
	domain.PartOfSpeechAdverb,
}

// HasSense reports whether word, or a lemma of it, has a sense with pos.
func (l *Lexicon) HasSense(word string, pos domain.PartOfSpeech) bool {
	word = domain.NormalizeLexeme(word)
	return word != "" && len(l.morph.Forms(word, pos)) > 0
}

// Synset returns the synset with the given ID.
func (l *Lexicon) Synset(id string) (*domain.Synset, bool) {
	return l.graph.Synset(id)
}

// Related resolves relation targets of s in the order of rels.
func (l *Lexicon) Related(s *domain.Synset, rels ...domain.Relation) []*domain.Synset {
	return l.graph.Related(s, rels...)
}

// LemmaRelations returns derivation and pertainym links of lemma within a synset.
func (l *Lexicon) LemmaRelations(lemma, synsetID string) []domain.LemmaRef {
	return l.graph.LemmaRelations(lemma, synsetID)
}

// PathSimilarity scores two synsets by their shortest hypernym path.
func (l *Lexicon) PathSimilarity(a, b *domain.Synset) (float64, bool) {
	return l.graph.PathSimilarity(a, b)
}

// Compounds returns every two-part noun lemma in enumeration order.
func (l *Lexicon) Compounds() []domain.Compound {
	return l.graph.Compounds()
}

// Lemmatize returns the shortest lemma of word for pos, or word itself.
func (l *Lexicon) Lemmatize(word string, pos domain.PartOfSpeech) string {
	return l.morph.Lemmatize(word, pos)
}

// Homophone returns a differently spelled word that sounds like word.
func (l *Lexicon) Homophone(word string) (string, bool) {
	return l.pron.Homophone(word)
}

// IPA returns the primary pronunciation of word in IPA, or "" when unknown.
func (l *Lexicon) IPA(word string) string {
	prons := l.pron.Pronunciations(word)
	if len(prons) == 0 {
		return ""
	}
	return prons[0].IPA
}

// Frequency returns the corpus count of word.
func (l *Lexicon) Frequency(word string) (int64, bool) {
	return l.freq.Frequency(word)
}

// CorpusSize returns the total token count, or 0 when no frequency list is loaded.
func (l *Lexicon) CorpusSize() int64 {
	return l.freq.Total()
}

// Package grammar turns a lexeme into a third-person present verb phrase
// for the riddle template ("that <verb phrase>?").
package grammar

import (
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
)

type lexicon interface {
	HasSense(word string, pos domain.PartOfSpeech) bool
	Synsets(word string, pos domain.PartOfSpeech) []*domain.Synset
	LemmaRelations(lemma, synsetID string) []domain.LemmaRef
	Lemmatize(word string, pos domain.PartOfSpeech) string
}

// emptyPhrase is produced for empty input.
const emptyPhrase = "does something"

// Normalizer is safe for concurrent use. Each instance owns its caches.
type Normalizer struct {
	log   *slog.Logger
	lex   lexicon
	verbs *lru.Cache[string, string]
	pos   *lru.Cache[string, domain.PartOfSpeech]
}

// NewNormalizer creates a Normalizer with empty caches sized by cfg.
func NewNormalizer(logger *slog.Logger, lex lexicon, cfg config.GrammarConfig) (*Normalizer, error) {
	verbs, err := lru.New[string, string](cfg.VerbCacheSize)
	if err != nil {
		return nil, fmt.Errorf("verb cache: %w", err)
	}
	pos, err := lru.New[string, domain.PartOfSpeech](cfg.POSCacheSize)
	if err != nil {
		return nil, fmt.Errorf("pos cache: %w", err)
	}
	return &Normalizer{
		log:   logger.With("service", "grammar"),
		lex:   lex,
		verbs: verbs,
		pos:   pos,
	}, nil
}

// VerbPhrase returns a verb phrase for word. It never fails: words with no
// verbal reading become "has <word>", or "does <word>" for -ing forms.
func (n *Normalizer) VerbPhrase(word string) string {
	word = domain.NormalizeText(domain.DisplayLexeme(word))
	if word == "" {
		return emptyPhrase
	}

	if cached, ok := n.verbs.Get(word); ok {
		return cached
	}

	phrase, strategy := n.findVerbPhrase(word)
	n.verbs.Add(word, phrase)
	n.log.Debug("verb phrase resolved",
		slog.String("word", word),
		slog.String("phrase", phrase),
		slog.String("strategy", strategy),
	)
	return phrase
}

func (n *Normalizer) findVerbPhrase(word string) (phrase, strategy string) {
	if n.isVerb(word) {
		return n.Conjugate(word), "verb"
	}

	if related, ok := n.relatedVerb(word); ok {
		return n.Conjugate(related), "derivation"
	}

	if stem, ok := n.firstVerb(ingRules, word); ok {
		return n.Conjugate(stem), "ing"
	}

	for _, pos := range []domain.PartOfSpeech{domain.PartOfSpeechVerb, domain.PartOfSpeechNoun} {
		lemma := domain.DisplayLexeme(n.lex.Lemmatize(word, pos))
		if lemma != word && n.isVerb(lemma) {
			return n.Conjugate(lemma), "lemma"
		}
	}

	if stem, ok := n.firstVerb(suffixRules, word); ok {
		return n.Conjugate(stem), "suffix"
	}

	if strings.HasSuffix(word, "ing") {
		return "does " + word, "fallback"
	}
	return "has " + word, "fallback"
}

func (n *Normalizer) isVerb(word string) bool {
	return n.lex.HasSense(word, domain.PartOfSpeechVerb)
}

// relatedVerb follows derivation links, then pertainym links, from every
// lemma of every sense of word to the first verb.
func (n *Normalizer) relatedVerb(word string) (string, bool) {
	for _, s := range n.lex.Synsets(word, "") {
		for _, lemma := range s.Lemmas {
			refs := n.lex.LemmaRelations(lemma, s.ID)
			for _, rel := range []domain.LemmaRelation{domain.LemmaRelationDerivation, domain.LemmaRelationPertainym} {
				for _, ref := range refs {
					if ref.Relation == rel && ref.PartOfSpeech == domain.PartOfSpeechVerb {
						return domain.DisplayLexeme(ref.Lemma), true
					}
				}
			}
		}
	}
	return "", false
}

// firstVerb returns the first stem produced by rules that has a verb sense.
func (n *Normalizer) firstVerb(rules []rule, word string) (string, bool) {
	for _, r := range rules {
		if !r.matches(word) {
			continue
		}
		for _, stem := range r.stems(word) {
			if stem != "" && n.isVerb(stem) {
				return stem, true
			}
		}
	}
	return "", false
}

// PartOfSpeech returns the most plausible part of speech of word, checking
// verbs first for -ing and -ed forms and nouns first otherwise. Unknown words
// are nouns.
func (n *Normalizer) PartOfSpeech(word string) domain.PartOfSpeech {
	word = domain.NormalizeText(word)
	if cached, ok := n.pos.Get(word); ok {
		return cached
	}

	order := []domain.PartOfSpeech{
		domain.PartOfSpeechNoun,
		domain.PartOfSpeechVerb,
		domain.PartOfSpeechAdjective,
		domain.PartOfSpeechAdverb,
	}
	if strings.HasSuffix(word, "ing") || strings.HasSuffix(word, "ed") {
		order[0], order[1] = order[1], order[0]
	}

	result := domain.PartOfSpeechNoun
	for _, pos := range order {
		if word != "" && n.lex.HasSense(word, pos) {
			result = pos
			break
		}
	}
	n.pos.Add(word, result)
	return result
}

package pun

import (
	"sync"

	"github.com/heartmarshall/punsmith/internal/domain"
)

var _ lexicon = &lexiconMock{}

type lexiconMock struct {
	SynsetsFunc   func(word string, pos domain.PartOfSpeech) []*domain.Synset
	RelatedFunc   func(s *domain.Synset, rels ...domain.Relation) []*domain.Synset
	CompoundsFunc func() []domain.Compound
	HomophoneFunc func(word string) (string, bool)

	calls struct {
		Homophone []struct {
			Word string
		}
	}
	lockHomophone sync.RWMutex
}

func (mock *lexiconMock) Synsets(word string, pos domain.PartOfSpeech) []*domain.Synset {
	if mock.SynsetsFunc == nil {
		return nil
	}
	return mock.SynsetsFunc(word, pos)
}

func (mock *lexiconMock) Related(s *domain.Synset, rels ...domain.Relation) []*domain.Synset {
	if mock.RelatedFunc == nil {
		return nil
	}
	return mock.RelatedFunc(s, rels...)
}

func (mock *lexiconMock) Compounds() []domain.Compound {
	if mock.CompoundsFunc == nil {
		panic("lexiconMock.CompoundsFunc: method is nil but lexicon.Compounds was just called")
	}
	return mock.CompoundsFunc()
}

func (mock *lexiconMock) Homophone(word string) (string, bool) {
	if mock.HomophoneFunc == nil {
		panic("lexiconMock.HomophoneFunc: method is nil but lexicon.Homophone was just called")
	}
	mock.lockHomophone.Lock()
	mock.calls.Homophone = append(mock.calls.Homophone, struct{ Word string }{Word: word})
	mock.lockHomophone.Unlock()
	return mock.HomophoneFunc(word)
}

func (mock *lexiconMock) HomophoneCalls() []struct{ Word string } {
	mock.lockHomophone.RLock()
	calls := mock.calls.Homophone
	mock.lockHomophone.RUnlock()
	return calls
}

var _ scorer = &scorerMock{}

type scorerMock struct {
	SimilarityFunc func(a, b string) float64
}

func (mock *scorerMock) Similarity(a, b string) float64 {
	if mock.SimilarityFunc == nil {
		panic("scorerMock.SimilarityFunc: method is nil but scorer.Similarity was just called")
	}
	return mock.SimilarityFunc(a, b)
}

var _ normalizer = &normalizerMock{}

type normalizerMock struct {
	VerbPhraseFunc func(word string) string
}

func (mock *normalizerMock) VerbPhrase(word string) string {
	if mock.VerbPhraseFunc == nil {
		return "has " + word
	}
	return mock.VerbPhraseFunc(word)
}

package cmu

import (
	"slices"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// Dictionary maps words to their pronunciations and pronunciations back to words.
// It is read-only after loading.
type Dictionary struct {
	words map[string][]Pronunciation
	byKey map[string][]string
	stats Stats
}

func newDictionary() *Dictionary {
	return &Dictionary{
		words: make(map[string][]Pronunciation),
		byKey: make(map[string][]string),
	}
}

func (d *Dictionary) add(word string, p Pronunciation) {
	for _, existing := range d.words[word] {
		if existing.Key() == p.Key() {
			return
		}
	}
	d.words[word] = append(d.words[word], p)
	key := p.Key()
	if !slices.Contains(d.byKey[key], word) {
		d.byKey[key] = append(d.byKey[key], word)
	}
}

func (d *Dictionary) finish() {
	for key := range d.byKey {
		slices.Sort(d.byKey[key])
	}
	for word := range d.words {
		slices.SortStableFunc(d.words[word], func(a, b Pronunciation) int {
			return a.VariantIndex - b.VariantIndex
		})
	}
	d.stats.UniqueWords = len(d.words)
}

// Stats returns parser statistics.
func (d *Dictionary) Stats() Stats {
	return d.stats
}

// Pronunciations returns every variant of word, primary first, or nil when
// the word has no entry.
func (d *Dictionary) Pronunciations(word string) []Pronunciation {
	return d.words[domain.NormalizeText(word)]
}

// Homophone returns a word that shares at least one pronunciation variant
// with word and is spelled differently. Only alphabetic words qualify; when
// several do, the alphabetically smallest wins so results do not depend on
// dictionary order.
func (d *Dictionary) Homophone(word string) (string, bool) {
	word = domain.NormalizeText(word)
	best := ""
	for _, p := range d.words[word] {
		for _, candidate := range d.byKey[p.Key()] {
			if candidate == word || !domain.IsAlphabetic(candidate) {
				continue
			}
			if best == "" || candidate < best {
				best = candidate
			}
			// byKey lists are sorted; the first eligible one is this variant's best.
			break
		}
	}
	return best, best != ""
}

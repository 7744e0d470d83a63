package wordnet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// OEWN 2025 JSON deserialization types.
//
// Expected directory structure (as distributed by https://github.com/globalwordnet/english-wordnet):
//
//	entries-a.json … entries-z.json   — lemma entries keyed by word
//	noun.*.json, verb.*.json, …       — synsets keyed by synset ID

// oewnEntryFile represents an entries-*.json file: {"word": {"pos": {...}}}.
type oewnEntryFile map[string]map[string]json.RawMessage

// oewnPOSEntry holds senses for a single POS of a word.
type oewnPOSEntry struct {
	Sense []oewnSense `json:"sense"`
}

// oewnSense holds a single sense linking a word to a synset.
type oewnSense struct {
	ID         string   `json:"id"`
	Synset     string   `json:"synset"`
	Derivation []string `json:"derivation"`
	Pertainym  []string `json:"pertainym"`
}

// oewnSynset holds a single synset from a {pos}.{category}.json file.
type oewnSynset struct {
	Members          []string `json:"members"`
	PartOfSpeech     string   `json:"partOfSpeech"`
	Definition       []string `json:"definition"`
	Hypernym         []string `json:"hypernym"`
	InstanceHypernym []string `json:"instance_hypernym"`
	Hyponym          []string `json:"hyponym"`
	InstanceHyponym  []string `json:"instance_hyponym"`
	MeroPart         []string `json:"mero_part"`
	MeroMember       []string `json:"mero_member"`
	MeroSubstance    []string `json:"mero_substance"`
	HoloPart         []string `json:"holo_part"`
	HoloMember       []string `json:"holo_member"`
	HoloSubstance    []string `json:"holo_substance"`
}

func (s oewnSynset) relations() map[domain.Relation][]string {
	return map[domain.Relation][]string{
		domain.RelationHypernym:         s.Hypernym,
		domain.RelationInstanceHypernym: s.InstanceHypernym,
		domain.RelationHyponym:          s.Hyponym,
		domain.RelationInstanceHyponym:  s.InstanceHyponym,
		domain.RelationPartMeronym:      s.MeroPart,
		domain.RelationMemberMeronym:    s.MeroMember,
		domain.RelationSubstanceMeronym: s.MeroSubstance,
		domain.RelationPartHolonym:      s.HoloPart,
		domain.RelationMemberHolonym:    s.HoloMember,
		domain.RelationSubstanceHolonym: s.HoloSubstance,
	}
}

// Load reads an OEWN JSON directory and builds the lexical graph.
// Any unreadable or malformed file fails the whole load.
func Load(dirPath string, opts ...Option) (*Graph, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	b := NewBuilder(opts...)

	// Step 1: Read entry files → senses in WordNet order, plus sense links.
	entryFiles, err := filepath.Glob(filepath.Join(dirPath, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}
	if len(entryFiles) == 0 {
		return nil, fmt.Errorf("no entries-*.json files in %s", dirPath)
	}
	slices.Sort(entryFiles)

	for _, path := range entryFiles {
		entries, err := readEntryFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if err := addEntries(b, entries); err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
	}

	// Step 2: Read synset files.
	synsetFiles, err := globSynsetFiles(dirPath)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}
	if len(synsetFiles) == 0 {
		return nil, fmt.Errorf("no synset files in %s", dirPath)
	}

	for _, path := range synsetFiles {
		synsets, err := readSynsetFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for id, s := range synsets {
			b.AddSynset(domain.Synset{
				ID:           id,
				PartOfSpeech: domain.PartOfSpeech(s.PartOfSpeech),
				Lemmas:       s.Members,
				Definition:   strings.Join(s.Definition, "; "),
				Relations:    s.relations(),
			})
		}
	}

	return b.Build()
}

// addEntries registers senses word by word in sorted order so the resulting
// index does not depend on map iteration.
func addEntries(b *Builder, entries oewnEntryFile) error {
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	slices.Sort(words)

	for _, word := range words {
		posMap := entries[word]
		keys := make([]string, 0, len(posMap))
		for k := range posMap {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			var posEntry oewnPOSEntry
			if err := json.Unmarshal(posMap[k], &posEntry); err != nil {
				return fmt.Errorf("decode entry %q: %w", word, err)
			}
			for _, sense := range posEntry.Sense {
				b.AddSense(word, sense.Synset, sense.ID)
				for _, target := range sense.Derivation {
					b.AddLemmaRelation(sense.ID, domain.LemmaRelationDerivation, target)
				}
				for _, target := range sense.Pertainym {
					b.AddLemmaRelation(sense.ID, domain.LemmaRelationPertainym, target)
				}
			}
		}
	}
	return nil
}

// readEntryFile reads a single entries-*.json file.
func readEntryFile(path string) (oewnEntryFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var entries oewnEntryFile
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return entries, nil
}

// readSynsetFile reads a single synset file ({pos}.{category}.json).
func readSynsetFile(path string) (map[string]oewnSynset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var synsets map[string]oewnSynset
	if err := json.NewDecoder(f).Decode(&synsets); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return synsets, nil
}

// globSynsetFiles finds all synset files in the directory, sorted.
// Synset files follow the pattern: {pos}.{category}.json where pos is noun/verb/adj/adv.
func globSynsetFiles(dirPath string) ([]string, error) {
	var result []string
	for _, prefix := range []string{"noun.", "verb.", "adj.", "adv."} {
		matches, err := filepath.Glob(filepath.Join(dirPath, prefix+"*.json"))
		if err != nil {
			return nil, err
		}
		slices.Sort(matches)
		result = append(result, matches...)
	}
	return result, nil
}

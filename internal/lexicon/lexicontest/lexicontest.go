// Package lexicontest builds a small, fixed lexicon for service tests.
//
// Compounds in enumeration order: food_processor, cereal_box, serial_killer,
// serial_murderer, flower_girl, pressure_cooker.
package lexicontest

import (
	"strings"
	"testing"

	"github.com/heartmarshall/punsmith/internal/domain"
	"github.com/heartmarshall/punsmith/internal/lexicon"
	"github.com/heartmarshall/punsmith/internal/lexicon/cmu"
	"github.com/heartmarshall/punsmith/internal/lexicon/frequency"
	"github.com/heartmarshall/punsmith/internal/lexicon/morph"
	"github.com/heartmarshall/punsmith/internal/lexicon/wordnet"
)

type synset struct {
	id    string
	pos   domain.PartOfSpeech
	words []string
	def   string
	rels  map[domain.Relation][]string
}

func noun(id string, words []string, def string, rels map[domain.Relation][]string) synset {
	return synset{id: id, pos: domain.PartOfSpeechNoun, words: words, def: def, rels: rels}
}

func verb(id string, words ...string) synset {
	return synset{id: id, pos: domain.PartOfSpeechVerb, words: words}
}

func hyp(ids ...string) map[domain.Relation][]string {
	return map[domain.Relation][]string{domain.RelationHypernym: ids}
}

var synsets = []synset{
	noun("fx-0001-n", []string{"entity"}, "that which is perceived to have its own distinct existence", nil),
	noun("fx-0002-n", []string{"matter"}, "that which has mass and occupies space", hyp("fx-0001-n")),
	noun("fx-0003-n", []string{"substance"}, "the real physical matter of which a thing consists", hyp("fx-0002-n")),
	noun("fx-0004-n", []string{"food", "nutrient"}, "any substance that can be metabolized by an animal to give energy", hyp("fx-0003-n")),
	noun("fx-0005-n", []string{"cereal", "grain"}, "foodstuff prepared from the starchy grains of cereal grasses", map[domain.Relation][]string{
		domain.RelationHypernym:         {"fx-0004-n"},
		domain.RelationSubstanceMeronym: {"fx-0006-n"},
	}),
	noun("fx-0006-n", []string{"fiber", "fibre"}, "the indigestible part of a plant", hyp("fx-0003-n")),
	noun("fx-0007-n", []string{"flour"}, "fine powdery foodstuff obtained by grinding grain", map[domain.Relation][]string{
		domain.RelationHypernym:         {"fx-0004-n"},
		domain.RelationPartMeronym:      {"fx-0008-n"},
		domain.RelationSubstanceMeronym: {"fx-0009-n"},
	}),
	noun("fx-0008-n", []string{"bran"}, "broken husks of the seeds of cereal grains", hyp("fx-0004-n")),
	noun("fx-0009-n", []string{"starch", "amylum"}, "a complex carbohydrate found chiefly in seeds", hyp("fx-0003-n")),
	noun("fx-0010-n", []string{"container"}, "any object that can be used to hold things", hyp("fx-0001-n")),
	noun("fx-0011-n", []string{"box"}, "a rectangular container", hyp("fx-0010-n")),
	noun("fx-0012-n", []string{"food_processor"}, "a kitchen appliance with interchangeable blades", hyp("fx-0013-n")),
	noun("fx-0013-n", []string{"appliance"}, "a device that performs a specific task", hyp("fx-0001-n")),
	noun("fx-0014-n", []string{"cereal_box"}, "a cardboard box for holding cereal", hyp("fx-0011-n")),
	noun("fx-0015-n", []string{"person", "individual"}, "a human being", hyp("fx-0001-n")),
	noun("fx-0016-n", []string{"killer", "slayer"}, "someone who causes the death of a person or animal", hyp("fx-0015-n")),
	noun("fx-0017-n", []string{"murderer", "liquidator"}, "a criminal who commits homicide", hyp("fx-0016-n")),
	noun("fx-0018-n", []string{"serial_killer", "serial_murderer"}, "someone who murders more than three victims", hyp("fx-0017-n")),
	noun("fx-0019-n", []string{"program", "programme"}, "a radio or television show", hyp("fx-0001-n")),
	noun("fx-0020-n", []string{"serial", "series"}, "a series of installments broadcast over time", hyp("fx-0019-n")),
	noun("fx-0021-n", []string{"series"}, "similar things placed in order", hyp("fx-0001-n")),
	noun("fx-0022-n", []string{"cook"}, "someone who cooks food", hyp("fx-0015-n")),
	noun("fx-0023-n", []string{"baker"}, "someone who bakes bread or cake", hyp("fx-0015-n")),
	noun("fx-0024-n", []string{"teacher"}, "a person whose occupation is teaching", hyp("fx-0015-n")),
	noun("fx-0025-n", []string{"flower", "bloom"}, "reproductive organ of angiosperm plants", hyp("fx-0026-n")),
	noun("fx-0026-n", []string{"plant"}, "a living organism lacking the power of locomotion", hyp("fx-0001-n")),
	noun("fx-0027-n", []string{"flower_girl"}, "a young girl who carries flowers in a wedding", hyp("fx-0015-n")),
	noun("fx-0028-n", []string{"pressure_cooker"}, "a pot that cooks food quickly under pressure", hyp("fx-0013-n")),
	noun("fx-0029-n", []string{"takeoff"}, "a rise into the air", hyp("fx-0001-n")),
	noun("fx-0030-n", []string{"family"}, "a social unit living together", map[domain.Relation][]string{
		domain.RelationHypernym:      {"fx-0001-n"},
		domain.RelationMemberMeronym: {"fx-0015-n"},
	}),

	verb("fx-0101-v", "cook"),
	verb("fx-0102-v", "bake"),
	verb("fx-0103-v", "run"),
	verb("fx-0104-v", "try"),
	verb("fx-0105-v", "be"),
	verb("fx-0106-v", "have"),
	verb("fx-0107-v", "do"),
	verb("fx-0108-v", "wash"),
	verb("fx-0109-v", "go"),
	verb("fx-0110-v", "teach"),
	verb("fx-0111-v", "decide"),
	verb("fx-0112-v", "govern"),
	verb("fx-0113-v", "rent"),
	verb("fx-0114-v", "probe"),
	verb("fx-0115-v", "meet"),
	verb("fx-0116-v", "kill"),
	verb("fx-0117-v", "take_off"),
	verb("fx-0118-v", "take"),
}

// senses carry the sense-level derivation links.
var senses = []struct {
	lemma, synsetID, senseID string
}{
	{"cook", "fx-0022-n", "cook%1"},
	{"cook", "fx-0101-v", "cook%2"},
	{"baker", "fx-0023-n", "baker%1"},
	{"bake", "fx-0102-v", "bake%2"},
	{"killer", "fx-0016-n", "killer%1"},
	{"kill", "fx-0116-v", "kill%2"},
	{"takeoff", "fx-0029-n", "takeoff%1"},
	{"take_off", "fx-0117-v", "take_off%2"},
}

var derivations = [][2]string{
	{"cook%1", "cook%2"},
	{"cook%2", "cook%1"},
	{"baker%1", "bake%2"},
	{"killer%1", "kill%2"},
	{"takeoff%1", "take_off%2"},
}

// CMUDict is the fixture pronunciation dictionary.
const CMUDict = `;;; fixture
BOX  B AA1 K S
CEREAL  S IH1 R IY0 AH0 L
FLOUR  F L AW1 ER0
FLOWER  F L AW1 ER0
FOOD  F UW1 D
KILLER  K IH1 L ER0
MURDERER  M ER1 D ER0 ER0
PRESSURE  P R EH1 SH ER0
SERIAL  S IH1 R IY0 AH0 L
`

// Frequencies is the fixture corpus. Words missing here count as unseen.
const Frequencies = `word,count
the,6000
food,150
killer,20
person,180
flower,25
`

// Irregular maps inflected forms to base forms, standing in for the full
// English irregular dictionary.
var Irregular = map[string][]string{
	"is":   {"be"},
	"are":  {"be"},
	"has":  {"have"},
	"does": {"do"},
	"ran":  {"run"},
	"went": {"go"},
}

type irregularMap map[string][]string

func (m irregularMap) Lemmas(word string) []string { return m[word] }

// Graph builds the fixture lexical graph.
func Graph(t testing.TB) *wordnet.Graph {
	t.Helper()

	b := wordnet.NewBuilder(wordnet.WithPathCacheSize(64))
	for _, s := range synsets {
		b.AddSynset(domain.Synset{
			ID:           s.id,
			PartOfSpeech: s.pos,
			Lemmas:       s.words,
			Definition:   s.def,
			Relations:    s.rels,
		})
	}
	for _, s := range senses {
		b.AddSense(s.lemma, s.synsetID, s.senseID)
	}
	for _, d := range derivations {
		b.AddLemmaRelation(d[0], domain.LemmaRelationDerivation, d[1])
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("build fixture graph: %v", err)
	}
	return g
}

// New returns the fixture lexicon with the frequency corpus loaded.
func New(t testing.TB) *lexicon.Lexicon {
	t.Helper()
	return build(t, true)
}

// NewWithoutCorpus returns the fixture lexicon with no frequency list.
func NewWithoutCorpus(t testing.TB) *lexicon.Lexicon {
	t.Helper()
	return build(t, false)
}

func build(t testing.TB, withCorpus bool) *lexicon.Lexicon {
	t.Helper()

	g := Graph(t)

	pron, err := cmu.Parse(strings.NewReader(CMUDict))
	if err != nil {
		t.Fatalf("parse fixture cmudict: %v", err)
	}

	var freq *frequency.Table
	if withCorpus {
		freq, err = frequency.Parse(strings.NewReader(Frequencies), ',')
		if err != nil {
			t.Fatalf("parse fixture frequencies: %v", err)
		}
	}

	return lexicon.New(g, morph.NewWithSource(g, irregularMap(Irregular)), pron, freq)
}

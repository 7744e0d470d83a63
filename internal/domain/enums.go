package domain

// PartOfSpeech is a WordNet part-of-speech code.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "n"
	PartOfSpeechVerb      PartOfSpeech = "v"
	PartOfSpeechAdjective PartOfSpeech = "a"
	// PartOfSpeechSatellite is an adjective satellite; lookups for adjectives include it.
	PartOfSpeechSatellite PartOfSpeech = "s"
	PartOfSpeechAdverb    PartOfSpeech = "r"
)

// AllPartsOfSpeech is the lookup order used when no part of speech is given.
var AllPartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechSatellite,
	PartOfSpeechAdverb,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechSatellite, PartOfSpeechAdverb:
		return true
	}
	return false
}

// Relation is a synset-level semantic relation type. Values match the OEWN JSON keys.
type Relation string

const (
	RelationHypernym         Relation = "hypernym"
	RelationInstanceHypernym Relation = "instance_hypernym"
	RelationHyponym          Relation = "hyponym"
	RelationInstanceHyponym  Relation = "instance_hyponym"
	RelationPartMeronym      Relation = "mero_part"
	RelationMemberMeronym    Relation = "mero_member"
	RelationSubstanceMeronym Relation = "mero_substance"
	RelationPartHolonym      Relation = "holo_part"
	RelationMemberHolonym    Relation = "holo_member"
	RelationSubstanceHolonym Relation = "holo_substance"
)

func (r Relation) String() string { return string(r) }

// Inverse returns the opposite direction of r, or "" when r has none.
func (r Relation) Inverse() Relation {
	switch r {
	case RelationHypernym:
		return RelationHyponym
	case RelationHyponym:
		return RelationHypernym
	case RelationInstanceHypernym:
		return RelationInstanceHyponym
	case RelationInstanceHyponym:
		return RelationInstanceHypernym
	case RelationPartMeronym:
		return RelationPartHolonym
	case RelationPartHolonym:
		return RelationPartMeronym
	case RelationMemberMeronym:
		return RelationMemberHolonym
	case RelationMemberHolonym:
		return RelationMemberMeronym
	case RelationSubstanceMeronym:
		return RelationSubstanceHolonym
	case RelationSubstanceHolonym:
		return RelationSubstanceMeronym
	}
	return ""
}

// SynsetRelations lists every relation the lexicon indexes, in a stable order.
var SynsetRelations = []Relation{
	RelationHypernym,
	RelationInstanceHypernym,
	RelationHyponym,
	RelationInstanceHyponym,
	RelationPartMeronym,
	RelationMemberMeronym,
	RelationSubstanceMeronym,
	RelationPartHolonym,
	RelationMemberHolonym,
	RelationSubstanceHolonym,
}

// LemmaRelation is a sense-level (lexical) relation type.
type LemmaRelation string

const (
	LemmaRelationDerivation LemmaRelation = "derivation"
	LemmaRelationPertainym  LemmaRelation = "pertainym"
)

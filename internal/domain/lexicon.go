package domain

// Synset is one sense in the lexical graph: a group of lemmas sharing a meaning.
// Relations hold target synset IDs; resolve them through the lexicon.
type Synset struct {
	ID           string
	PartOfSpeech PartOfSpeech
	Lemmas       []string
	Definition   string
	Relations    map[Relation][]string
}

// Targets returns the IDs related to s by rel, in source order.
func (s *Synset) Targets(rel Relation) []string {
	if s == nil || s.Relations == nil {
		return nil
	}
	return s.Relations[rel]
}

// FirstLemma returns the synset's head lemma, or "" for an empty synset.
func (s *Synset) FirstLemma() string {
	if s == nil || len(s.Lemmas) == 0 {
		return ""
	}
	return s.Lemmas[0]
}

// LemmaRef points at a lemma in a specific synset, as reached through a
// sense-level relation (derivation, pertainym).
type LemmaRef struct {
	Lemma        string
	SynsetID     string
	PartOfSpeech PartOfSpeech
	Relation     LemmaRelation
}

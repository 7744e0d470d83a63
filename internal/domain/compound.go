package domain

import "strings"

// Compound is a two-part compound noun, e.g. "serial_killer" -> ("serial", "killer").
type Compound struct {
	Lemma    string
	Head     string
	Modifier string
}

// Parts returns head and modifier in order.
func (c Compound) Parts() [2]string {
	return [2]string{c.Head, c.Modifier}
}

// SplitCompound splits a lemma joined by exactly one "_" or "-" separator.
// Anything with zero or several separators, or an empty side, is rejected.
func SplitCompound(lemma string) (Compound, bool) {
	if strings.Count(lemma, "_")+strings.Count(lemma, "-") != 1 {
		return Compound{}, false
	}
	idx := strings.IndexAny(lemma, "_-")
	head, modifier := lemma[:idx], lemma[idx+1:]
	if head == "" || modifier == "" {
		return Compound{}, false
	}
	return Compound{Lemma: lemma, Head: head, Modifier: modifier}, true
}

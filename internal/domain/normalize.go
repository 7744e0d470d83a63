package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLexeme turns a lemma or written form into the lexeme key used by
// every lexicon lookup: normalized text with inner spaces joined by "_",
// the way WordNet spells multi-word lemmas ("cereal killer" -> "cereal_killer").
func NormalizeLexeme(text string) string {
	return strings.ReplaceAll(NormalizeText(text), " ", "_")
}

// DisplayLexeme renders a lexeme for human-readable output ("breakfast_food" -> "breakfast food").
func DisplayLexeme(lexeme string) string {
	return strings.ReplaceAll(lexeme, "_", " ")
}

// IsAlphabetic reports whether s is non-empty and consists of letters only.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsMultiWord reports whether a lexeme contains an internal word separator.
func IsMultiWord(lexeme string) bool {
	return strings.ContainsAny(lexeme, "_- ")
}

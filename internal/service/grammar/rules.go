package grammar

import "strings"

// rule reconstructs candidate verb stems from a word with a given ending.
// Stems are tried in order.
type rule struct {
	name   string
	suffix string
	stems  func(word string) []string
}

func (r rule) matches(word string) bool {
	return len(word) > len(r.suffix) && strings.HasSuffix(word, r.suffix)
}

func trim(word, suffix string) string {
	return strings.TrimSuffix(word, suffix)
}

// ingRules recover the base of an -ing form: "running" -> "run",
// "making" -> "make", "cooking" -> "cook".
var ingRules = []rule{
	{
		name:   "doubled-consonant",
		suffix: "ing",
		stems: func(word string) []string {
			base := trim(word, "ing")
			if len(base) >= 3 && base[len(base)-1] == base[len(base)-2] && !strings.ContainsRune("aeiouwxy", rune(base[len(base)-1])) {
				return []string{base[:len(base)-1]}
			}
			return nil
		},
	},
	{
		name:   "e-restoration",
		suffix: "ing",
		stems: func(word string) []string {
			return []string{trim(word, "ing") + "e"}
		},
	},
	{
		name:   "bare-stem",
		suffix: "ing",
		stems: func(word string) []string {
			return []string{trim(word, "ing")}
		},
	},
}

// suffixRules map derived nouns and adjectives back to verbs.
var suffixRules = []rule{
	{
		name:   "agent-er",
		suffix: "er",
		stems: func(word string) []string {
			return []string{trim(word, "er")}
		},
	},
	{
		name:   "agent-or",
		suffix: "or",
		stems: func(word string) []string {
			return []string{trim(word, "or")}
		},
	},
	{
		// probation -> probe
		name:   "action-tion",
		suffix: "tion",
		stems: func(word string) []string {
			base := strings.TrimSuffix(trim(word, "tion"), "a")
			if !strings.HasSuffix(base, "e") {
				base += "e"
			}
			return []string{base}
		},
	},
	{
		// decision -> decide
		name:   "action-sion",
		suffix: "sion",
		stems: func(word string) []string {
			base := trim(word, "sion")
			return []string{base + "de", base + "d", base}
		},
	},
	{
		name:   "result-ment",
		suffix: "ment",
		stems: func(word string) []string {
			return []string{trim(word, "ment")}
		},
	},
	{
		name:   "adjective-al",
		suffix: "al",
		stems: func(word string) []string {
			return []string{trim(word, "al")}
		},
	},
}

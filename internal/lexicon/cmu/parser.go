// Package cmu loads the CMU Pronouncing Dictionary and answers homophone queries.
package cmu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "\u0251",     // ɑ
	"AE": "\u00e6",     // æ
	"AH": "\u028c",     // ʌ
	"AO": "\u0254",     // ɔ
	"AW": "a\u028a",    // aʊ
	"AY": "a\u026a",    // aɪ
	"B":  "b",
	"CH": "t\u0283",    // tʃ
	"D":  "d",
	"DH": "\u00f0",     // ð
	"EH": "\u025b",     // ɛ
	"ER": "\u025d",     // ɝ
	"EY": "e\u026a",    // eɪ
	"F":  "f",
	"G":  "\u0261",     // ɡ
	"HH": "h",
	"IH": "\u026a",     // ɪ
	"IY": "i",
	"JH": "d\u0292",    // dʒ
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "\u014b",     // ŋ
	"OW": "o\u028a",    // oʊ
	"OY": "\u0254\u026a", // ɔɪ
	"P":  "p",
	"R":  "\u0279",     // ɹ
	"S":  "s",
	"SH": "\u0283",     // ʃ
	"T":  "t",
	"TH": "\u03b8",     // θ
	"UH": "\u028a",     // ʊ
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "\u0292",     // ʒ
}

// Pronunciation is one pronunciation variant of a word.
type Pronunciation struct {
	Phones       []string // ARPAbet with stress markers, e.g. ["S", "IH1", "R", "IY0", "AH0", "L"]
	IPA          string   // e.g. "/sɪɹiʌl/"
	VariantIndex int      // 0 for primary, 1 for (2), 2 for (3), etc.
}

// Key is the identity used for homophone matching: the full phone sequence, stress included.
func (p Pronunciation) Key() string {
	return strings.Join(p.Phones, " ")
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// Load reads a CMU dict file and builds a Dictionary.
func Load(filePath string) (*Dictionary, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads CMU dict lines from r.
func Parse(r io.Reader) (*Dictionary, error) {
	d := newDictionary()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.stats.TotalLines++
		line := scanner.Text()

		word, pron, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, ";;;") {
				d.stats.CommentLines++
			}
			continue
		}

		d.stats.ParsedLines++
		d.add(word, pron)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	d.finish()
	return d, nil
}

// arpabetToIPA converts an ARPAbet phoneme (without stress) to its IPA equivalent.
func arpabetToIPA(phoneme string) (string, bool) {
	ipa, ok := arpabetMap[phoneme]
	return ipa, ok
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if len(phoneme) == 0 {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}

// phonemesToIPA converts a slice of ARPAbet phonemes to an IPA transcription string.
// Stress markers are stripped before lookup. Result is wrapped in slashes.
func phonemesToIPA(phonemes []string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range phonemes {
		if ipa, ok := arpabetToIPA(stripStress(p)); ok {
			b.WriteString(ipa)
		}
	}
	b.WriteByte('/')
	return b.String()
}

// parseLine parses a single line from a CMU dict file.
// Returns the normalized word and its pronunciation, or errSkipLine for comments/empty lines.
func parseLine(line string) (string, Pronunciation, error) {
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", Pronunciation{}, errSkipLine
	}

	// Classic format: WORD  PH1 PH2 ... (two spaces); cmudict-0.7b+ also uses a single space.
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", Pronunciation{}, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(fields[0])
	if word == "" {
		return "", Pronunciation{}, errSkipLine
	}
	phones := fields[1:]
	// Trailing "# comment" annotations appear in newer releases.
	for i, p := range phones {
		if strings.HasPrefix(p, "#") {
			phones = phones[:i]
			break
		}
	}
	if len(phones) == 0 {
		return "", Pronunciation{}, errSkipLine
	}

	return word, Pronunciation{
		Phones:       phones,
		IPA:          phonemesToIPA(phones),
		VariantIndex: variantIdx,
	}, nil
}

// parseWordAndVariant splits a raw CMU word like "HOUSE(2)" into
// the normalized word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeText(raw), 0
	}

	word := raw[:idx]
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return domain.NormalizeText(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil {
		return domain.NormalizeText(raw), 0
	}

	// (2) → variant index 1, (3) → variant index 2, etc.
	return domain.NormalizeText(word), n - 1
}

package cmu

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

// --- ARPAbet to IPA conversion ---

func TestArpabetToIPA(t *testing.T) {
	tests := []struct {
		name    string
		phoneme string
		want    string
	}{
		{"consonant CH", "CH", "tʃ"},
		{"consonant NG", "NG", "ŋ"},
		{"consonant R", "R", "ɹ"},
		{"consonant S", "S", "s"},
		{"vowel AH", "AH", "ʌ"},
		{"vowel IH", "IH", "ɪ"},
		{"vowel IY", "IY", "i"},
		{"vowel OY", "OY", "ɔɪ"},
		{"unknown phoneme", "XX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := arpabetToIPA(tt.phoneme)
			if tt.want == "" {
				if ok {
					t.Errorf("arpabetToIPA(%q) should return ok=false for unknown phoneme", tt.phoneme)
				}
				return
			}
			if !ok {
				t.Fatalf("arpabetToIPA(%q) returned ok=false", tt.phoneme)
			}
			if got != tt.want {
				t.Errorf("arpabetToIPA(%q) = %q, want %q", tt.phoneme, got, tt.want)
			}
		})
	}
}

func TestStripStress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"IH1", "IH"},
		{"IY0", "IY"},
		{"AH2", "AH"},
		{"S", "S"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripStress(tt.in); got != tt.want {
			t.Errorf("stripStress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhonemesToIPA(t *testing.T) {
	got := phonemesToIPA([]string{"S", "IH1", "R", "IY0", "AH0", "L"})
	want := "/sɪɹiʌl/"
	if got != want {
		t.Errorf("phonemesToIPA = %q, want %q", got, want)
	}
}

// --- Line parsing ---

func TestParseLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantWord    string
		wantPhones  string
		wantVariant int
		wantSkip    bool
	}{
		{name: "primary", line: "SERIAL  S IH1 R IY0 AH0 L", wantWord: "serial", wantPhones: "S IH1 R IY0 AH0 L"},
		{name: "variant", line: "SERIAL(2)  S IY1 R IY0 AH0 L", wantWord: "serial", wantPhones: "S IY1 R IY0 AH0 L", wantVariant: 1},
		{name: "single space", line: "FOOD F UW1 D", wantWord: "food", wantPhones: "F UW1 D"},
		{name: "trailing annotation", line: "READ  R EH1 D # past tense", wantWord: "read", wantPhones: "R EH1 D"},
		{name: "comment", line: ";;; comment", wantSkip: true},
		{name: "empty", line: "", wantSkip: true},
		{name: "word only", line: "LONELY", wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, pron, err := parseLine(tt.line)
			if tt.wantSkip {
				if err != errSkipLine {
					t.Fatalf("parseLine(%q) err = %v, want errSkipLine", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLine(%q) unexpected error: %v", tt.line, err)
			}
			if word != tt.wantWord {
				t.Errorf("word = %q, want %q", word, tt.wantWord)
			}
			if got := strings.Join(pron.Phones, " "); got != tt.wantPhones {
				t.Errorf("phones = %q, want %q", got, tt.wantPhones)
			}
			if pron.VariantIndex != tt.wantVariant {
				t.Errorf("variant = %d, want %d", pron.VariantIndex, tt.wantVariant)
			}
		})
	}
}

func TestParseWordAndVariant(t *testing.T) {
	tests := []struct {
		raw         string
		wantWord    string
		wantVariant int
	}{
		{"HOUSE", "house", 0},
		{"HOUSE(2)", "house", 1},
		{"HOUSE(3)", "house", 2},
		{"HOUSE(X)", "house(x)", 0},
		{"HOUSE(2", "house(2", 0},
	}
	for _, tt := range tests {
		word, variant := parseWordAndVariant(tt.raw)
		if word != tt.wantWord || variant != tt.wantVariant {
			t.Errorf("parseWordAndVariant(%q) = (%q, %d), want (%q, %d)",
				tt.raw, word, variant, tt.wantWord, tt.wantVariant)
		}
	}
}

// --- File loading ---

func TestLoad(t *testing.T) {
	d, err := Load(testdataPath(t, "cmudict.txt"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	stats := d.Stats()
	if stats.CommentLines != 2 {
		t.Errorf("CommentLines = %d, want 2", stats.CommentLines)
	}
	if stats.ParsedLines != 18 {
		t.Errorf("ParsedLines = %d, want 18", stats.ParsedLines)
	}
	if stats.UniqueWords != 16 {
		t.Errorf("UniqueWords = %d, want 16", stats.UniqueWords)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(testdataPath(t, "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

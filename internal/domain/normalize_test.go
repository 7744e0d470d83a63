package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Hello World", want: "hello world"},
		{name: "compress multiple spaces", input: "hello   world", want: "hello world"},
		{name: "hyphens preserved", input: "well-known", want: "well-known"},
		{name: "apostrophes preserved", input: "don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t hello \t", want: "hello"},
		{name: "inner tab", input: "cereal\tkiller", want: "cereal killer"},
		{name: "single word", input: "FOOD", want: "food"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLexeme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Cereal Killer", "cereal_killer"},
		{"  serial   killer ", "serial_killer"},
		{"breakfast_food", "breakfast_food"},
		{"x-ray", "x-ray"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeLexeme(tt.input); got != tt.want {
				t.Errorf("NormalizeLexeme(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayLexeme(t *testing.T) {
	t.Parallel()

	if got := DisplayLexeme("breakfast_food"); got != "breakfast food" {
		t.Errorf("DisplayLexeme = %q, want %q", got, "breakfast food")
	}
}

func TestIsAlphabetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"cereal", true},
		{"", false},
		{"don't", false},
		{"x-ray", false},
		{"b52", false},
	}
	for _, tt := range tests {
		if got := IsAlphabetic(tt.input); got != tt.want {
			t.Errorf("IsAlphabetic(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsMultiWord(t *testing.T) {
	t.Parallel()

	if !IsMultiWord("ice_cream") || !IsMultiWord("x-ray") || IsMultiWord("cream") {
		t.Error("IsMultiWord misclassified input")
	}
}

package cmu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Dictionary {
	t.Helper()
	d, err := Load(testdataPath(t, "cmudict.txt"))
	require.NoError(t, err)
	return d
}

func TestDictionary_Homophone(t *testing.T) {
	t.Parallel()
	d := loadFixture(t)

	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{word: "cereal", want: "serial", wantOK: true},
		{word: "serial", want: "cereal", wantOK: true},
		{word: "SERIAL", want: "cereal", wantOK: true},
		{word: "bear", want: "bare", wantOK: true},
		// bear's is not alphabetic.
		{word: "bears", want: "", wantOK: false},
		// read matches red via R EH1 D and reed via R IY1 D; red sorts first.
		{word: "read", want: "red", wantOK: true},
		{word: "reed", want: "read", wantOK: true},
		{word: "flower", want: "flour", wantOK: true},
		{word: "cook", want: "", wantOK: false},
		{word: "unknown", want: "", wantOK: false},
		{word: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got, ok := d.Homophone(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionary_HomophoneNeverReturnsInput(t *testing.T) {
	t.Parallel()
	d := loadFixture(t)

	for word := range d.words {
		h, ok := d.Homophone(word)
		if !ok {
			continue
		}
		assert.NotEqual(t, word, h)
		assert.True(t, sharesPronunciation(d, word, h), "%s / %s", word, h)
	}
}

func sharesPronunciation(d *Dictionary, a, b string) bool {
	for _, pa := range d.Pronunciations(a) {
		for _, pb := range d.Pronunciations(b) {
			if pa.Key() == pb.Key() {
				return true
			}
		}
	}
	return false
}

func TestDictionary_Pronunciations(t *testing.T) {
	t.Parallel()
	d := loadFixture(t)

	prons := d.Pronunciations("serial")
	require.Len(t, prons, 2)
	assert.Equal(t, 0, prons[0].VariantIndex)
	assert.Equal(t, "S IH1 R IY0 AH0 L", prons[0].Key())
	assert.Equal(t, 1, prons[1].VariantIndex)
	assert.True(t, strings.HasPrefix(prons[0].IPA, "/s"))

	assert.Nil(t, d.Pronunciations("zzz"))
}

func TestParse_DuplicateLinesCollapsed(t *testing.T) {
	t.Parallel()
	d, err := Parse(strings.NewReader("MAIL  M EY1 L\nMAIL  M EY1 L\nMALE  M EY1 L\n"))
	require.NoError(t, err)

	assert.Len(t, d.Pronunciations("mail"), 1)
	h, ok := d.Homophone("male")
	assert.True(t, ok)
	assert.Equal(t, "mail", h)
}

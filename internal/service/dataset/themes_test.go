package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemes(t *testing.T) {
	t.Parallel()

	themes := DefaultThemes()
	require.NotEmpty(t, themes)

	seen := make(map[string]bool, len(themes))
	for _, th := range themes {
		assert.Equal(t, strings.ToLower(strings.TrimSpace(th)), th)
		assert.False(t, seen[th], "duplicate theme %q", th)
		seen[th] = true
	}
	assert.True(t, seen["food"])
	assert.True(t, seen["dna"])

	// Callers get their own copy.
	themes[0] = "changed"
	assert.NotEqual(t, "changed", DefaultThemes()[0])
}

func TestParseThemes(t *testing.T) {
	t.Parallel()

	in := "# topics\nFood\n\n  cat  \nfood\nice  cream\n"
	got, err := ParseThemes(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "cat", "ice cream"}, got)
}

func TestLoadThemes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "themes.txt")
	require.NoError(t, os.WriteFile(path, []byte("music\nsports\n"), 0o600))

	got, err := LoadThemes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"music", "sports"}, got)

	_, err = LoadThemes(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

package frequency

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	table, err := Load(testdataPath(t, "freq.csv"))
	require.NoError(t, err)

	assert.Equal(t, 6, table.Len())
	assert.Equal(t, int64(69971+147+5+4+12+47+3), table.Total())

	got, ok := table.Frequency("food")
	assert.True(t, ok)
	assert.Equal(t, int64(150), got, "case variants are summed")

	got, ok = table.Frequency("CEREAL")
	assert.True(t, ok)
	assert.Equal(t, int64(5), got)

	_, ok = table.Frequency("pumpkin")
	assert.False(t, ok)
}

func TestLoad_TSVWithoutHeader(t *testing.T) {
	t.Parallel()

	table, err := Load(testdataPath(t, "freq.tsv"))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, int64(110), table.Total())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(testdataPath(t, "missing.csv"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "bad count after header", input: "word,count\nfood,many\n"},
		{name: "negative count", input: "food,-4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.input), ',')
			assert.Error(t, err)
		})
	}
}

func TestParse_SkipsShortRows(t *testing.T) {
	t.Parallel()

	table, err := Parse(strings.NewReader("food,3\nlonely\n,7\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, int64(3), table.Total())
}

func TestTable_NilSafe(t *testing.T) {
	t.Parallel()

	var table *Table
	_, ok := table.Frequency("food")
	assert.False(t, ok)
	assert.Zero(t, table.Total())
	assert.Zero(t, table.Len())
}

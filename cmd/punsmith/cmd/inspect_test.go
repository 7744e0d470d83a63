package cmd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/punsmith/internal/app"
	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/lexicon/lexicontest"
)

func newFixtureApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		Generator: config.GeneratorConfig{
			ScanCap:        10000,
			RelevanceFloor: 0.3,
			DirectLimit:    50,
			AttemptCap:     100,
			RelatedDirect:  30,
			RelatedSimilar: 20,
		},
		Grammar: config.GrammarConfig{VerbCacheSize: 32, POSCacheSize: 32},
	}
	a, err := app.New(cfg, slog.Default(), lexicontest.New(t))
	require.NoError(t, err)
	return a
}

func TestInspectSimilarity(t *testing.T) {
	t.Parallel()
	a := newFixtureApp(t)

	tests := []struct {
		x, y    string
		related string
	}{
		{"cereal", "flour", "related=true"},
		{"killer", "zzz", "related=false"},
	}

	for _, tt := range tests {
		t.Run(tt.x+"_"+tt.y, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, inspectSimilarity(&buf, a, tt.x, tt.y))
			assert.Contains(t, buf.String(), tt.x+" ~ "+tt.y+": ")
			assert.Contains(t, buf.String(), tt.related)
		})
	}
}

func TestInspectVerbs(t *testing.T) {
	t.Parallel()
	a := newFixtureApp(t)

	var buf bytes.Buffer
	require.NoError(t, inspectVerbs(&buf, a, []string{"baker", "take off", "fiber"}))

	out := buf.String()
	assert.Contains(t, out, "baker (n) -> bakes\n")
	assert.Contains(t, out, "-> takes off\n")
	assert.Contains(t, out, "fiber (n) -> has fiber\n")
}

func TestInspectRelated(t *testing.T) {
	t.Parallel()
	a := newFixtureApp(t)

	var buf bytes.Buffer
	require.NoError(t, inspectRelated(&buf, a, "flower"))
	assert.Equal(t,
		"related (4): flower, bloom, plant, entity\ndirect matches (1): flower_girl\n",
		buf.String())
}

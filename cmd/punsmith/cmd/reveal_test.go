package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
)

func cerealKiller() domain.Riddle {
	return domain.Riddle{
		Subject:    "murderer",
		Predicate:  "fiber",
		VerbPhrase: "has fiber",
		Homophone:  "cereal",
		Modifier:   "killer",
	}
}

func TestRevealer_Countdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newRevealer(&buf, config.RevealConfig{Enabled: true, Steps: 3, Interval: time.Millisecond})

	require.NoError(t, r.show(context.Background(), cerealKiller()))
	assert.Equal(t,
		"\nWhat do you call a murderer that has fiber?\n\n3...2...1...\nA cereal killer!\n",
		buf.String())
}

func TestRevealer_Disabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newRevealer(&buf, config.RevealConfig{Enabled: false, Steps: 3, Interval: time.Hour})

	require.NoError(t, r.show(context.Background(), cerealKiller()))
	assert.Equal(t, "\nWhat do you call a murderer that has fiber?\n\nA cereal killer!\n", buf.String())
}

func TestRevealer_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r := newRevealer(&buf, config.RevealConfig{Enabled: true, Steps: 3, Interval: time.Hour})

	err := r.show(ctx, cerealKiller())
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, buf.String(), "cereal killer")
	assert.Contains(t, buf.String(), "3...")
}

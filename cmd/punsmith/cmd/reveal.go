package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
)

// revealer prints a riddle's question, counts down, then prints the answer.
type revealer struct {
	out      io.Writer
	steps    int
	interval time.Duration
}

func newRevealer(out io.Writer, cfg config.RevealConfig) revealer {
	r := revealer{out: out, steps: cfg.Steps, interval: cfg.Interval}
	if !cfg.Enabled {
		r.steps = 0
	}
	return r
}

// show stops without the answer if ctx is cancelled during the countdown.
func (r revealer) show(ctx context.Context, riddle domain.Riddle) error {
	fmt.Fprintf(r.out, "\n%s\n\n", riddle.Question())

	if r.steps > 0 {
		ticker := time.NewTicker(max(r.interval, time.Millisecond))
		defer ticker.Stop()

		for i := r.steps; i > 0; i-- {
			fmt.Fprintf(r.out, "%d...", i)
			select {
			case <-ctx.Done():
				fmt.Fprintln(r.out)
				return ctx.Err()
			case <-ticker.C:
			}
		}
		fmt.Fprintln(r.out)
	}

	_, err := fmt.Fprintln(r.out, riddle.Answer())
	return err
}

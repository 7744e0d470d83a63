// Package dataset runs the pun generator over a list of themes and collects
// the (theme, question, answer) records.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/domain"
	"github.com/heartmarshall/punsmith/internal/service/pun"
	"github.com/heartmarshall/punsmith/pkg/ctxutil"
)

// PunService is the per-worker generator. Workers never share one, so each
// keeps its own grammar caches.
type PunService interface {
	Generate(ctx context.Context, theme string) (pun.Result, error)
}

// ServiceFactory builds a fresh PunService for one worker.
type ServiceFactory func() (PunService, error)

// Sink receives the records of a finished run.
type Sink interface {
	Save(ctx context.Context, records []domain.PunRecord) error
}

// Report is the outcome of one run. Records and Failed follow input order.
type Report struct {
	RunID      uuid.UUID
	Total      int
	Records    []domain.PunRecord
	Failed     []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// SuccessRate is the share of themes that produced a riddle, in [0,1].
func (r Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(len(r.Records)) / float64(r.Total)
}

// Generator fans themes out to a fixed pool of workers.
type Generator struct {
	log        *slog.Logger
	newService ServiceFactory
	workers    int
	now        func() time.Time
}

// NewGenerator creates a dataset generator.
func NewGenerator(logger *slog.Logger, newService ServiceFactory, cfg config.DatasetConfig) *Generator {
	return &Generator{
		log:        logger.With("service", "dataset"),
		newService: newService,
		workers:    max(cfg.Workers, 1),
		now:        time.Now,
	}
}

type outcome struct {
	found  bool
	riddle domain.Riddle
}

// Run generates one riddle per theme. A theme without a riddle is recorded
// in Report.Failed; only cancellation and factory errors abort the run.
func (g *Generator) Run(ctx context.Context, themes []string) (Report, error) {
	report := Report{
		RunID:     uuid.New(),
		Total:     len(themes),
		StartedAt: g.now(),
	}
	g.log.Info("dataset run started", "run_id", report.RunID, "themes", len(themes), "workers", g.workers)

	ctx = ctxutil.WithRunID(ctx, report.RunID)
	outcomes := make([]outcome, len(themes))
	jobs := make(chan int)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(jobs)
		for i := range themes {
			select {
			case jobs <- i:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})

	for w := range min(g.workers, max(len(themes), 1)) {
		eg.Go(func() error {
			svc, err := g.newService()
			if err != nil {
				return fmt.Errorf("worker %d: create pun service: %w", w, err)
			}
			for i := range jobs {
				res, err := svc.Generate(egCtx, themes[i])
				if err != nil {
					return fmt.Errorf("theme %q: %w", themes[i], err)
				}
				outcomes[i] = outcome{found: res.Found, riddle: res.Riddle}
				if res.Found {
					g.log.Debug("theme done", "theme", themes[i], "riddle", res.Riddle.String())
				} else {
					g.log.Debug("theme failed", "theme", themes[i], "attempts", res.Attempts)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, fmt.Errorf("dataset run: %w", err)
	}

	report.FinishedAt = g.now()
	for i, o := range outcomes {
		if !o.found {
			report.Failed = append(report.Failed, themes[i])
			continue
		}
		report.Records = append(report.Records, domain.NewPunRecord(report.RunID, themes[i], o.riddle, report.FinishedAt))
	}

	g.log.Info("dataset run finished",
		"run_id", report.RunID,
		"succeeded", len(report.Records),
		"failed", len(report.Failed),
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)
	return report, nil
}

// Publish hands the report's records to every sink in order and stops at
// the first failure. An empty report is not published.
func (g *Generator) Publish(ctx context.Context, report Report, sinks ...Sink) error {
	if len(report.Records) == 0 {
		g.log.Warn("no records to save", "run_id", report.RunID)
		return nil
	}
	for _, sink := range sinks {
		if err := sink.Save(ctx, report.Records); err != nil {
			return fmt.Errorf("save dataset: %w", err)
		}
	}
	return nil
}

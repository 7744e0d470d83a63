package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/punsmith/internal/adapter/export"
	"github.com/heartmarshall/punsmith/internal/adapter/postgres"
	punrepo "github.com/heartmarshall/punsmith/internal/adapter/postgres/pun"
	"github.com/heartmarshall/punsmith/internal/config"
	"github.com/heartmarshall/punsmith/internal/lexicon"
	"github.com/heartmarshall/punsmith/internal/service/dataset"
	"github.com/heartmarshall/punsmith/internal/service/grammar"
	"github.com/heartmarshall/punsmith/internal/service/pun"
	"github.com/heartmarshall/punsmith/internal/service/similarity"
)

// App holds what every command needs: configuration, the logger and the
// loaded lexicon. The lexicon is read-only and shared; grammar caches are
// not, so services are built per caller.
type App struct {
	cfg    *config.Config
	log    *slog.Logger
	lex    *lexicon.Lexicon
	scorer *similarity.Scorer
}

// Bootstrap loads configuration, initializes the logger and loads the
// lexicon. A missing or corrupt lexical resource is fatal.
func Bootstrap(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting punsmith",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	lex, err := lexicon.Load(ctx, cfg.Lexicon, logger)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	return New(cfg, logger, lex)
}

// New assembles an App from parts that are already loaded.
func New(cfg *config.Config, logger *slog.Logger, lex *lexicon.Lexicon) (*App, error) {
	scorer, err := similarity.NewScorer(lex, 0)
	if err != nil {
		return nil, fmt.Errorf("create scorer: %w", err)
	}
	return &App{cfg: cfg, log: logger, lex: lex, scorer: scorer}, nil
}

func (a *App) Config() *config.Config { return a.cfg }
func (a *App) Logger() *slog.Logger { return a.log }
func (a *App) Lexicon() *lexicon.Lexicon { return a.lex }
func (a *App) Scorer() *similarity.Scorer { return a.scorer }

// NewNormalizer returns a normalizer with empty caches.
func (a *App) NewNormalizer() (*grammar.Normalizer, error) {
	return grammar.NewNormalizer(a.log, a.lex, a.cfg.Grammar)
}

// NewPunService returns a pun service that owns a fresh normalizer.
func (a *App) NewPunService() (*pun.Service, error) {
	norm, err := a.NewNormalizer()
	if err != nil {
		return nil, fmt.Errorf("create normalizer: %w", err)
	}
	return pun.NewService(a.log, a.lex, a.scorer, norm, a.cfg.Generator), nil
}

// NewDatasetGenerator returns a generator whose workers each get their own
// pun service.
func (a *App) NewDatasetGenerator() *dataset.Generator {
	factory := func() (dataset.PunService, error) {
		return a.NewPunService()
	}
	return dataset.NewGenerator(a.log, factory, a.cfg.Dataset)
}

// Themes returns the configured theme list, or the built-in one.
func (a *App) Themes() ([]string, error) {
	if a.cfg.Dataset.ThemesPath == "" {
		return dataset.DefaultThemes(), nil
	}
	return dataset.LoadThemes(a.cfg.Dataset.ThemesPath)
}

// DatasetSinks returns the file sink and, when enabled, the Postgres sink.
// The returned cleanup must be called once the sinks are done.
func (a *App) DatasetSinks(ctx context.Context) ([]dataset.Sink, func(), error) {
	formats, err := export.ParseFormats(a.cfg.Dataset.Formats)
	if err != nil {
		return nil, nil, err
	}
	sinks := []dataset.Sink{export.NewFileSink(a.log, a.cfg.Dataset.OutputBase, formats)}

	if !a.cfg.Dataset.StoreDB {
		return sinks, func() {}, nil
	}

	repo, closeRepo, err := OpenPunRepo(ctx, a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return append(sinks, repo), closeRepo, nil
}

// OpenPunRepo connects to Postgres and returns the stored-pun repository
// with the func that closes its pool.
func OpenPunRepo(ctx context.Context, cfg config.DatabaseConfig) (*punrepo.Repo, func(), error) {
	if cfg.DSN == "" {
		return nil, nil, fmt.Errorf("database dsn is not configured (set DATABASE_DSN)")
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return punrepo.New(pool), pool.Close, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Lexicon.WordNetDir == "" {
		return errors.New("lexicon.wordnet_dir is required")
	}
	if c.Lexicon.CMUDictPath == "" {
		return errors.New("lexicon.cmudict_path is required")
	}
	if c.Lexicon.PathCacheSize <= 0 {
		return fmt.Errorf("lexicon.path_cache_size must be > 0 (got %d)", c.Lexicon.PathCacheSize)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.Grammar.VerbCacheSize <= 0 || c.Grammar.POSCacheSize <= 0 {
		return fmt.Errorf("grammar: cache sizes must be > 0 (got %d, %d)", c.Grammar.VerbCacheSize, c.Grammar.POSCacheSize)
	}

	if c.Reveal.Steps < 0 {
		return fmt.Errorf("reveal.steps must be >= 0 (got %d)", c.Reveal.Steps)
	}
	if c.Reveal.Interval < 0 {
		return fmt.Errorf("reveal.interval must be >= 0 (got %v)", c.Reveal.Interval)
	}

	if err := c.Dataset.validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if c.Dataset.StoreDB && c.Database.DSN == "" {
		return errors.New("database.dsn is required when dataset.store_db is enabled")
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.ScanCap <= 0 {
		return fmt.Errorf("scan_cap must be > 0 (got %d)", g.ScanCap)
	}
	if g.RelevanceFloor < 0 || g.RelevanceFloor > 1 {
		return fmt.Errorf("relevance_floor must be within [0, 1] (got %v)", g.RelevanceFloor)
	}
	if g.DirectLimit <= 0 {
		return fmt.Errorf("direct_limit must be > 0 (got %d)", g.DirectLimit)
	}
	if g.AttemptCap <= 0 {
		return fmt.Errorf("attempt_cap must be > 0 (got %d)", g.AttemptCap)
	}
	if g.RelatedDirect < 0 || g.RelatedSimilar < 0 {
		return fmt.Errorf("related limits must be >= 0 (got %d, %d)", g.RelatedDirect, g.RelatedSimilar)
	}
	return nil
}

func (d *DatasetConfig) validate() error {
	if d.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", d.Workers)
	}
	if strings.TrimSpace(d.OutputBase) == "" {
		return errors.New("output_base is required")
	}
	d.Formats = ParseList(d.FormatsRaw)
	return nil
}

// ParseList splits a comma-separated string into trimmed, lower-cased,
// non-empty items. An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

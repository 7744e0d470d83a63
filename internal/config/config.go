package config

import "time"

// Config is the root application configuration.
type Config struct {
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Generator GeneratorConfig `yaml:"generator"`
	Grammar   GrammarConfig   `yaml:"grammar"`
	Reveal    RevealConfig    `yaml:"reveal"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
}

// LexiconConfig points at the lexical resources loaded at startup.
// FrequencyPath is optional; without it the information-content signal is zero.
type LexiconConfig struct {
	WordNetDir    string `yaml:"wordnet_dir"     env:"LEXICON_WORDNET_DIR"     env-default:"./data/oewn"`
	CMUDictPath   string `yaml:"cmudict_path"    env:"LEXICON_CMUDICT_PATH"    env-default:"./data/cmudict.dict"`
	FrequencyPath string `yaml:"frequency_path"  env:"LEXICON_FREQUENCY_PATH"`
	PathCacheSize int    `yaml:"path_cache_size" env:"LEXICON_PATH_CACHE_SIZE" env-default:"8192"`
}

// GeneratorConfig holds candidate search limits.
type GeneratorConfig struct {
	ScanCap        int     `yaml:"scan_cap"        env:"GENERATOR_SCAN_CAP"        env-default:"10000"`
	RelevanceFloor float64 `yaml:"relevance_floor" env:"GENERATOR_RELEVANCE_FLOOR" env-default:"0.3"`
	DirectLimit    int     `yaml:"direct_limit"    env:"GENERATOR_DIRECT_LIMIT"    env-default:"50"`
	AttemptCap     int     `yaml:"attempt_cap"     env:"GENERATOR_ATTEMPT_CAP"     env-default:"100"`
	RelatedDirect  int     `yaml:"related_direct"  env:"GENERATOR_RELATED_DIRECT"  env-default:"30"`
	RelatedSimilar int     `yaml:"related_similar" env:"GENERATOR_RELATED_SIMILAR" env-default:"20"`
}

// GrammarConfig bounds the normalizer's memo caches.
type GrammarConfig struct {
	VerbCacheSize int `yaml:"verb_cache_size" env:"GRAMMAR_VERB_CACHE_SIZE" env-default:"4096"`
	POSCacheSize  int `yaml:"pos_cache_size"  env:"GRAMMAR_POS_CACHE_SIZE"  env-default:"4096"`
}

// RevealConfig controls the countdown printed before the answer.
type RevealConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"REVEAL_ENABLED"  env-default:"true"`
	Steps    int           `yaml:"steps"    env:"REVEAL_STEPS"    env-default:"3"`
	Interval time.Duration `yaml:"interval" env:"REVEAL_INTERVAL" env-default:"1s"`
}

// DatasetConfig holds batch generation settings.
type DatasetConfig struct {
	Workers    int    `yaml:"workers"     env:"DATASET_WORKERS"     env-default:"4"`
	OutputBase string `yaml:"output_base" env:"DATASET_OUTPUT_BASE" env-default:"puns_dataset"`
	FormatsRaw string `yaml:"formats"     env:"DATASET_FORMATS"     env-default:"csv,json,txt"`
	ThemesPath string `yaml:"themes_path" env:"DATASET_THEMES_PATH"`
	StoreDB    bool   `yaml:"store_db"    env:"DATASET_STORE_DB"    env-default:"false"`

	// Formats is parsed from FormatsRaw during validation.
	Formats []string `yaml:"-" env:"-"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only the dataset
// export and the migrate command use it.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

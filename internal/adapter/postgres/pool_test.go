package postgres

import (
	"testing"
	"time"

	"github.com/heartmarshall/punsmith/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:             "postgres://u:p@localhost:5432/puns",
		MaxConns:        7,
		MaxConnLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("poolConfig: unexpected error: %v", err)
	}
	if cfg.MaxConns != 7 {
		t.Errorf("MaxConns = %d, want 7", cfg.MaxConns)
	}
	if cfg.MaxConnLifetime != time.Minute {
		t.Errorf("MaxConnLifetime = %v, want 1m", cfg.MaxConnLifetime)
	}
	if cfg.MinConns != 0 {
		t.Errorf("MinConns = %d, want pgx default 0", cfg.MinConns)
	}
	if got := cfg.ConnConfig.RuntimeParams["application_name"]; got != applicationName {
		t.Errorf("application_name = %q, want %q", got, applicationName)
	}
}

func TestPoolConfig_KeepsDSNApplicationName(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{DSN: "postgres://localhost/puns?application_name=reports"})
	if err != nil {
		t.Fatalf("poolConfig: unexpected error: %v", err)
	}
	if got := cfg.ConnConfig.RuntimeParams["application_name"]; got != "reports" {
		t.Errorf("application_name = %q, want %q", got, "reports")
	}
}

func TestPoolConfig_InvalidDSN(t *testing.T) {
	t.Parallel()

	if _, err := poolConfig(config.DatabaseConfig{DSN: "postgres://%zz"}); err == nil {
		t.Fatal("poolConfig: expected error for malformed DSN")
	}
}

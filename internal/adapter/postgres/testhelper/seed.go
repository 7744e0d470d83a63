package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPuns inserts n records under a fresh run ID and returns them in
// insertion order.
func SeedPuns(t *testing.T, pool *pgxpool.Pool, n int) []domain.PunRecord {
	t.Helper()
	ctx := context.Background()

	runID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uniqueSuffix()

	records := make([]domain.PunRecord, n)
	for i := range records {
		records[i] = domain.PunRecord{
			ID:        uuid.New(),
			RunID:     runID,
			Theme:     fmt.Sprintf("theme-%s-%d", suffix, i),
			Question:  fmt.Sprintf("What do you call a seed %d?", i),
			Answer:    fmt.Sprintf("seed %d", i),
			CreatedAt: now,
		}
		r := records[i]
		_, err := pool.Exec(ctx,
			`INSERT INTO puns (id, run_id, theme, question, answer, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			r.ID, r.RunID, r.Theme, r.Question, r.Answer, r.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedPuns insert: %v", err)
		}
	}
	return records
}

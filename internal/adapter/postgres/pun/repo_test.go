package pun_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/punsmith/internal/adapter/postgres/pun"
	"github.com/heartmarshall/punsmith/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/punsmith/internal/domain"
)

func newRepo(t *testing.T) *pun.Repo {
	t.Helper()
	return pun.New(testhelper.SetupTestDB(t))
}

func buildRecords(runID uuid.UUID, themes ...string) []domain.PunRecord {
	now := time.Now().UTC().Truncate(time.Microsecond)
	recs := make([]domain.PunRecord, len(themes))
	for i, theme := range themes {
		recs[i] = domain.PunRecord{
			ID:        uuid.New(),
			RunID:     runID,
			Theme:     theme,
			Question:  "What do you call a " + theme + "?",
			Answer:    theme + " pun",
			CreatedAt: now,
		}
	}
	return recs
}

func uniqueTheme(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// ---------------------------------------------------------------------------
// Save tests
// ---------------------------------------------------------------------------

func TestRepo_Save_HappyPath(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	runID := uuid.New()
	recs := buildRecords(runID, "zebra", "apple", "mango")
	if err := repo.Save(ctx, recs); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	got, err := repo.ListByRun(ctx, runID)
	if err != nil {
		t.Fatalf("ListByRun: unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListByRun: got %d records, want 3", len(got))
	}
	if got[0].Theme != "apple" || got[2].Theme != "zebra" {
		t.Errorf("ListByRun order: got %q..%q, want apple..zebra", got[0].Theme, got[2].Theme)
	}

	one, err := repo.GetByID(ctx, recs[1].ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if one.Question != recs[1].Question || one.Answer != recs[1].Answer {
		t.Errorf("GetByID: got %+v, want %+v", one, recs[1])
	}
	if !one.CreatedAt.Equal(recs[1].CreatedAt) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", one.CreatedAt, recs[1].CreatedAt)
	}
}

func TestRepo_Save_Empty(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	if err := repo.Save(context.Background(), nil); err != nil {
		t.Fatalf("Save(nil): unexpected error: %v", err)
	}
}

func TestRepo_Save_FillsIDAndTimestamp(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	runID := uuid.New()
	rec := domain.PunRecord{RunID: runID, Theme: "bare", Question: "What do you call a bear?", Answer: "bare pun"}
	if err := repo.Save(ctx, []domain.PunRecord{rec}); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	got, err := repo.ListByRun(ctx, runID)
	if err != nil {
		t.Fatalf("ListByRun: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestRepo_Save_DuplicateThemeRollsBack(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	runID := uuid.New()
	recs := buildRecords(runID, "echo", "echo")

	err := repo.Save(ctx, recs)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Save duplicate: got %v, want ErrAlreadyExists", err)
	}

	n, err := repo.CountByRun(ctx, runID)
	if err != nil {
		t.Fatalf("CountByRun: unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("CountByRun after rollback: got %d, want 0", n)
	}
}

func TestRepo_Save_EmptyQuestionRejected(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	recs := buildRecords(uuid.New(), "blank")
	recs[0].Question = ""

	err := repo.Save(context.Background(), recs)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Save empty question: got %v, want ErrValidation", err)
	}
}

func TestRepo_Save_LargeRunIsChunked(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	runID := uuid.New()
	themes := make([]string, 2500)
	for i := range themes {
		themes[i] = fmt.Sprintf("t%04d", i)
	}
	if err := repo.Save(ctx, buildRecords(runID, themes...)); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	n, err := repo.CountByRun(ctx, runID)
	if err != nil {
		t.Fatalf("CountByRun: unexpected error: %v", err)
	}
	if n != 2500 {
		t.Errorf("CountByRun: got %d, want 2500", n)
	}
}

// ---------------------------------------------------------------------------
// Read tests
// ---------------------------------------------------------------------------

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID missing: got %v, want ErrNotFound", err)
	}
}

func TestRepo_ListByTheme(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	theme := uniqueTheme("kiwi")
	older := buildRecords(uuid.New(), theme)
	older[0].CreatedAt = older[0].CreatedAt.Add(-time.Hour)
	newer := buildRecords(uuid.New(), theme)

	for _, recs := range [][]domain.PunRecord{older, newer} {
		if err := repo.Save(ctx, recs); err != nil {
			t.Fatalf("Save: unexpected error: %v", err)
		}
	}

	got, err := repo.ListByTheme(ctx, theme, 0)
	if err != nil {
		t.Fatalf("ListByTheme: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByTheme: got %d, want 2", len(got))
	}
	if got[0].ID != newer[0].ID {
		t.Errorf("ListByTheme: newest first, got %s want %s", got[0].ID, newer[0].ID)
	}

	limited, err := repo.ListByTheme(ctx, theme, 1)
	if err != nil {
		t.Fatalf("ListByTheme limit: unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("ListByTheme limit: got %d, want 1", len(limited))
	}

	none, err := repo.ListByTheme(ctx, uniqueTheme("absent"), 0)
	if err != nil {
		t.Fatalf("ListByTheme absent: unexpected error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("ListByTheme absent: got %v, want empty non-nil slice", none)
	}
}

func TestRepo_DeleteRun(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	seeded := buildRecords(uuid.New(), "one", "two")
	if err := repo.Save(ctx, seeded); err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}

	n, err := repo.DeleteRun(ctx, seeded[0].RunID)
	if err != nil {
		t.Fatalf("DeleteRun: unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteRun: removed %d, want 2", n)
	}

	if _, err := repo.GetByID(ctx, seeded[0].ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID after delete: got %v, want ErrNotFound", err)
	}
}

func TestRepo_ReadsSeededPuns(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := pun.New(pool)

	seeded := testhelper.SeedPuns(t, pool, 3)

	n, err := repo.CountByRun(context.Background(), seeded[0].RunID)
	if err != nil {
		t.Fatalf("CountByRun: unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("CountByRun: got %d, want 3", n)
	}
}

// Package pun stores generated riddles in PostgreSQL.
package pun

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/punsmith/internal/adapter/postgres"
	"github.com/heartmarshall/punsmith/internal/domain"
)

const (
	table = "puns"

	// insertChunk keeps one INSERT well below the 65535 bind parameter limit.
	insertChunk = 1000
)

var columns = []string{"id", "run_id", "theme", "question", "answer", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides pun persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new pun repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save inserts records in one transaction. Records with a zero ID get a new
// one; a zero CreatedAt becomes now. Invalid records fail with
// domain.ErrValidation before anything is written. A theme repeated within
// a run fails with domain.ErrAlreadyExists and nothing is stored.
func (r *Repo) Save(ctx context.Context, records []domain.PunRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d (%q): %w", i, rec.Theme, err)
		}
	}
	runID := records[0].RunID
	now := time.Now().UTC()

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		for start := 0; start < len(records); start += insertChunk {
			chunk := records[start:min(start+insertChunk, len(records))]

			insert := psql.Insert(table).Columns(columns...)
			for _, rec := range chunk {
				id := rec.ID
				if id == uuid.Nil {
					id = uuid.New()
				}
				createdAt := rec.CreatedAt
				if createdAt.IsZero() {
					createdAt = now
				}
				insert = insert.Values(id, rec.RunID, rec.Theme, rec.Question, rec.Answer, createdAt)
			}

			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build insert: %w", err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return postgres.MapError(err, "pun run", runID)
			}
		}
		return nil
	})
}

// DeleteRun removes every record of a run and returns how many were removed.
func (r *Repo) DeleteRun(ctx context.Context, runID uuid.UUID) (int64, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"run_id": runID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "pun run", runID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one record. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.PunRecord, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.PunRecord{}, fmt.Errorf("build select: %w", err)
	}

	rec, err := scanRecord(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.PunRecord{}, postgres.MapError(err, "pun", id)
	}
	return rec, nil
}

// ListByRun returns the records of one run ordered by theme.
func (r *Repo) ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.PunRecord, error) {
	builder := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("theme ASC")

	recs, err := r.list(ctx, builder)
	if err != nil {
		return nil, postgres.MapError(err, "pun run", runID)
	}
	return recs, nil
}

// ListByTheme returns the newest records for a theme across runs, at most
// limit of them. A limit of zero or less means no limit.
func (r *Repo) ListByTheme(ctx context.Context, theme string, limit int) ([]domain.PunRecord, error) {
	builder := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"theme": domain.NormalizeText(theme)}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	recs, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("list puns for theme %q: %w", theme, err)
	}
	return recs, nil
}

// CountByRun returns how many records a run stored.
func (r *Repo) CountByRun(ctx context.Context, runID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).Where(sq.Eq{"run_id": runID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "pun run", runID)
	}
	return n, nil
}

func (r *Repo) list(ctx context.Context, builder sq.SelectBuilder) ([]domain.PunRecord, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]domain.PunRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func scanRecord(row pgx.Row) (domain.PunRecord, error) {
	var rec domain.PunRecord
	err := row.Scan(&rec.ID, &rec.RunID, &rec.Theme, &rec.Question, &rec.Answer, &rec.CreatedAt)
	return rec, err
}

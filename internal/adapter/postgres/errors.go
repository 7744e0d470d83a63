package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// SQLSTATE codes raised by the puns schema.
const (
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeNotNullViolation = "23502"
	codeStringTooLong    = "22001"
)

// MapError converts pgx errors to domain errors, prefixed with the entity
// and its ID. Context errors keep their identity.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	wrap := func(target error) error {
		return fmt.Errorf("%s %s: %w", entity, id, target)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case codeCheckViolation, codeNotNullViolation, codeStringTooLong:
			return fmt.Errorf("%s %s: %w: %s", entity, id, domain.ErrValidation, pgErr.ConstraintName)
		}
	}

	return wrap(err)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// ErrSchemaMissing reports that the slot table does not exist yet.
var ErrSchemaMissing = errors.New("schema missing: run cmd/migrate up")

// SQLSTATE codes the slot adapter distinguishes.
const (
	codeUndefinedTable      = "42P01"
	codeInvalidByteSequence = "22021"
	codeStringTooLong       = "22001"
)

// MapError converts pgx/pgconn errors into domain errors, prefixed with the
// entity and key involved. Context errors pass through unmapped.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	wrap := func(target error) error {
		return fmt.Errorf("%s %s: %w", entity, key, target)
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
		case codeUndefinedTable:
			return wrap(ErrSchemaMissing)
		case codeInvalidByteSequence, codeStringTooLong:
			return wrap(domain.ErrValidation)
		}
	}

	return wrap(err)
}

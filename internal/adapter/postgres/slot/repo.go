// Package slot implements the durable key-value slot on PostgreSQL.
// Each key is one row of kv_slots; values are stored as opaque bytes.
package slot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/captionkit-backend/internal/adapter/postgres"
)

const (
	table     = "kv_slots"
	colKey    = "key"
	colValue  = "value"
	colUpdate = "updated_at"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is satisfied by *pgxpool.Pool and pgxmock pools.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Repo provides slot persistence backed by PostgreSQL.
type Repo struct {
	db querier
}

// New creates a new slot repository.
func New(db querier) *Repo {
	return &Repo{db: db}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select(colValue).
		From(table).
		Where(squirrel.Eq{colKey: key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	var value []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, postgres.MapError(err, "slot", key)
	}
	return value, nil
}

// Put overwrites the value stored under key, creating the row if needed.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := psql.
		Insert(table).
		Columns(colKey, colValue, colUpdate).
		Values(key, value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colValue + " = EXCLUDED." + colValue + ", " +
			colUpdate + " = EXCLUDED." + colUpdate).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert %s: %w", table, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "slot", key)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Repo) Delete(ctx context.Context, key string) error {
	query, args, err := psql.
		Delete(table).
		Where(squirrel.Eq{colKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "slot", key)
	}
	return nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

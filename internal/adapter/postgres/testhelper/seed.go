package testhelper

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a slot key that no other test uses, so tests sharing the
// database can run in parallel.
func UniqueKey(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "-", " ", "_").Replace(t.Name())
	return name + "-" + uuid.NewString()[:8]
}

// SeedSlot writes value under key directly, bypassing the repository.
func SeedSlot(t *testing.T, pool *pgxpool.Pool, key string, value []byte) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO kv_slots (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed slot %q: %v", key, err)
	}
}

// ReadSlot returns the raw row for key; ok is false when no row exists.
func ReadSlot(t *testing.T, pool *pgxpool.Pool, key string) (value []byte, updatedAt time.Time, ok bool) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT value, updated_at FROM kv_slots WHERE key = $1`, key,
	).Scan(&value, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, time.Time{}, false
	}
	if err != nil {
		t.Fatalf("testhelper: read slot %q: %v", key, err)
	}
	return value, updatedAt, true
}

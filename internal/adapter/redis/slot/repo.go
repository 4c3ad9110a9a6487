// Package slot implements the durable key-value slot on Redis.
// Each slot is one plain string key, optionally namespaced by a prefix.
package slot

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// DefaultPrefix namespaces slot keys in a shared Redis database.
const DefaultPrefix = "captionkit:"

// Repo provides slot persistence backed by Redis.
type Repo struct {
	client goredis.Cmdable
	prefix string
}

// New creates a new slot repository. Keys are stored as prefix+key.
func New(client goredis.Cmdable, prefix string) *Repo {
	return &Repo{client: client, prefix: prefix}
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("slot %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", key, err)
	}
	return value, nil
}

// Put overwrites the value stored under key. Slots never expire.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("slot %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Repo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("slot %s: %w", key, err)
	}
	return nil
}

// Ping round-trips a PING to the server.
func (r *Repo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

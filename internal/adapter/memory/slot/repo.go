// Package slot implements an in-process key-value slot. Contents are lost on
// restart; it backs tests and the memory storage driver.
package slot

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Repo is a map-backed slot store, safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory slot store.
func New() *Repo {
	return &Repo{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.data[key]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value under key.
func (r *Repo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte{}, value...)
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Repo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

// Ping always succeeds.
func (r *Repo) Ping(_ context.Context) error { return nil }

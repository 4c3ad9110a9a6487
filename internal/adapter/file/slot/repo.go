// Package slot implements the durable key-value slot on the local filesystem.
// Each key is stored in its own file under a data directory; writes are
// atomic (temp file + rename) so a crash never leaves a half-written slot.
package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

const fileExt = ".json"

// Repo provides slot persistence backed by files in a directory.
type Repo struct {
	dir string
	mu  sync.RWMutex
}

// New creates the data directory if needed and returns a ready repository.
func New(dir string) (*Repo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Repo{dir: dir}, nil
}

// Path returns the file that holds key.
func (r *Repo) Path(key string) string {
	return filepath.Join(r.dir, sanitizeKey(key)+fileExt)
}

// Get returns the value stored under key.
// Returns domain.ErrNotFound if the key has never been written.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("slot %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", key, err)
	}
	return data, nil
}

// Put atomically overwrites the value stored under key.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, "."+sanitizeKey(key)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("slot %s: create temp file: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("slot %s: write: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("slot %s: sync: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("slot %s: close: %w", key, err)
	}
	if err := os.Rename(tmpName, r.Path(key)); err != nil {
		return fmt.Errorf("slot %s: rename: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (r *Repo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("slot %s: %w", key, err)
	}
	return nil
}

// sanitizeKey maps key to a safe file name: anything other than letters,
// digits, '-' and '_' becomes '_'.
func sanitizeKey(key string) string {
	if key == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}

// Ping checks that the data directory still exists and is a directory.
func (r *Repo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(r.dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", r.dir)
	}
	return nil
}

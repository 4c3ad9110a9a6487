package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/domain"
	"github.com/heartmarshall/captionkit-backend/internal/service/saved"
)

// RetentionPeriod converts storage.retention_days into a duration.
func RetentionPeriod(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

func startRetention(ctx context.Context, cfg config.StorageConfig, store *saved.Service) {
	if cfg.RetentionDays <= 0 || cfg.RetentionInterval <= 0 {
		return
	}
	go store.Retain(ctx, RetentionPeriod(cfg.RetentionDays), cfg.RetentionInterval)
}

// CleanupResult reports what an offline cleanup changed.
type CleanupResult struct {
	Removed   int
	Remaining int
	Purged    bool
}

// Cleanup prunes expired captions from the slot, or with purge deletes the
// slot key entirely. No server may be using the slot at the same time.
func Cleanup(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger, slot Slot, purge bool) (CleanupResult, error) {
	if purge {
		if err := slot.Delete(ctx, cfg.SlotKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return CleanupResult{}, fmt.Errorf("purge %s: %w", cfg.SlotKey, err)
		}
		return CleanupResult{Purged: true}, nil
	}

	store := saved.NewService(logger, slot, cfg.SlotKey)
	store.Load(ctx)

	var removed int
	if cfg.RetentionDays > 0 {
		removed = store.PruneBefore(ctx, time.Now().Add(-RetentionPeriod(cfg.RetentionDays)))
	}
	return CleanupResult{Removed: removed, Remaining: store.Count()}, nil
}

package saved

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Remove deletes the caption with the given id. It reports whether anything
// was removed; removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)
	s.persist(ctx)

	s.log.InfoContext(ctx, "caption removed",
		slog.Int64("caption_id", id),
		slog.Int("total", len(s.items)),
	)
	return true
}

// ClearAll removes every saved caption and returns how many there were.
func (s *Service) ClearAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = []domain.Caption{}
	s.persist(ctx)

	s.log.InfoContext(ctx, "saved captions cleared", slog.Int("removed", n))
	return n
}

// PruneBefore removes every caption saved before threshold and returns how
// many were removed. The slot is written only when something changed.
func (s *Service) PruneBefore(ctx context.Context, threshold time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(c domain.Caption) bool {
		return c.IsSaved() && c.SavedAt.Before(threshold)
	})
	removed := before - len(s.items)
	if removed == 0 {
		return 0
	}

	s.persist(ctx)

	s.log.InfoContext(ctx, "old saved captions pruned",
		slog.Int("removed", removed),
		slog.Time("threshold", threshold),
	)
	return removed
}

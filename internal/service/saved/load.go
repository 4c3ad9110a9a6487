package saved

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Load replaces the in-memory collection with the slot contents and returns
// the number of captions loaded. An empty slot, a read failure or content
// that does not parse all leave the store empty; the latter two are logged.
func (s *Service) Load(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.Caption{}

	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.InfoContext(ctx, "no saved captions yet", slog.String("key", s.key))
		return 0
	}
	if err != nil {
		s.log.ErrorContext(ctx, "read saved captions",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
		return 0
	}

	items, err := decode(data)
	if err != nil {
		s.log.WarnContext(ctx, "discarding unreadable saved captions",
			slog.String("key", s.key),
			slog.Int("bytes", len(data)),
			slog.String("error", err.Error()),
		)
		return 0
	}

	s.items = items
	s.log.InfoContext(ctx, "saved captions loaded",
		slog.String("key", s.key),
		slog.Int("count", len(items)),
	)
	return len(items)
}

package saved

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Save appends a copy of c stamped with the current time. Saving an id that is
// already present changes nothing and returns the stored entry with
// created=false.
func (s *Service) Save(ctx context.Context, c domain.Caption) (domain.Caption, bool, error) {
	if err := validateCaption(c); err != nil {
		return domain.Caption{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(c.ID); i >= 0 {
		return s.items[i].Clone(), false, nil
	}

	savedAt := s.now().UTC().Truncate(time.Millisecond)
	entry := c.Clone()
	entry.SavedAt = &savedAt

	s.items = append(s.items, entry)
	s.persist(ctx)

	s.log.InfoContext(ctx, "caption saved",
		slog.Int64("caption_id", entry.ID),
		slog.String("style", entry.Style.String()),
		slog.Int("total", len(s.items)),
	)

	return entry.Clone(), true, nil
}

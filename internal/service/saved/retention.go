package saved

import (
	"context"
	"log/slog"
	"time"
)

// Retain prunes captions saved more than keep ago, once immediately and then
// every interval, until ctx is done. Run it in the process that serves the
// store; a second process pruning the same slot is overwritten by the next save.
func (s *Service) Retain(ctx context.Context, keep, interval time.Duration) {
	s.log.InfoContext(ctx, "retention started",
		slog.Duration("keep", keep),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.PruneBefore(ctx, s.now().Add(-keep))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

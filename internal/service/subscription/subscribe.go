package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Subscribe validates the address, waits for the configured delay and hands
// the address to the mailing list. Cancelling ctx during the wait aborts the
// signup.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	email := strings.TrimSpace(input.Email)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("subscribe: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if err := s.list.Add(ctx, email); err != nil {
		return fmt.Errorf("add to mailing list: %w", err)
	}

	s.log.InfoContext(ctx, "newsletter subscription accepted")
	return nil
}

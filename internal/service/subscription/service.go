package subscription

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/config"
)

type mailingList interface {
	Add(ctx context.Context, email string) error
}

// Service handles newsletter signups.
type Service struct {
	list  mailingList
	delay time.Duration
	log   *slog.Logger
}

// NewService creates a new subscription service.
func NewService(
	log *slog.Logger,
	list mailingList,
	cfg config.SubscriptionConfig,
) *Service {
	return &Service{
		list:  list,
		delay: cfg.Delay,
		log:   log.With("service", "subscription"),
	}
}

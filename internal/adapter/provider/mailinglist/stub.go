package mailinglist

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Stub is a mailing-list provider that only logs new subscribers.
type Stub struct {
	log   *slog.Logger
	added atomic.Int64
}

// NewStub creates a new logging-only mailing-list provider.
func NewStub(log *slog.Logger) *Stub {
	return &Stub{log: log.With("provider", "mailinglist")}
}

// Add records the address in the log. It never fails.
func (s *Stub) Add(ctx context.Context, email string) error {
	s.added.Add(1)
	s.log.InfoContext(ctx, "subscriber added", slog.String("email", maskEmail(email)))
	return nil
}

// Added returns how many addresses were handed to the stub.
func (s *Stub) Added() int64 { return s.added.Load() }

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

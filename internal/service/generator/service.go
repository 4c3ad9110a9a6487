package generator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Batch is the result of one generation request.
type Batch struct {
	Seq         uint64           `json:"seq"`
	Input       string           `json:"input"`
	Style       domain.Style     `json:"style"`
	Niche       domain.Niche     `json:"niche"`
	Captions    []domain.Caption `json:"captions"`
	GeneratedAt time.Time        `json:"generatedAt"`
	// Stale is set when a newer request completed first; the batch was not
	// recorded as the latest one.
	Stale bool `json:"stale"`
}

func (b *Batch) clone() *Batch {
	out := *b
	out.Captions = make([]domain.Caption, len(b.Captions))
	for i, c := range b.Captions {
		out.Captions[i] = c.Clone()
	}
	return &out
}

// Service wraps the Engine with input validation, the simulated latency and
// last-request-wins bookkeeping.
type Service struct {
	engine         *Engine
	delay          time.Duration
	maxInputLength int
	log            *slog.Logger
	wait           func(ctx context.Context, d time.Duration) error
	now            func() time.Time

	mu        sync.Mutex
	issued    uint64
	committed uint64
	latest    *Batch
}

// NewService creates a new generator service.
func NewService(
	log *slog.Logger,
	engine *Engine,
	cfg config.GeneratorConfig,
) *Service {
	return &Service{
		engine:         engine,
		delay:          cfg.Delay,
		maxInputLength: cfg.MaxInputLength,
		log:            log.With("service", "generator"),
		wait:           sleepCtx,
		now:            time.Now,
	}
}

// Latest returns a copy of the most recent committed batch, or nil when
// nothing has been generated yet.
func (s *Service) Latest() *Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return nil
	}
	return s.latest.clone()
}

func (s *Service) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// commit records b as the latest batch unless a newer request already did.
func (s *Service) commit(b *Batch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.Seq <= s.committed {
		return false
	}
	s.committed = b.Seq
	s.latest = b.clone()
	return true
}

// sleepCtx blocks for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

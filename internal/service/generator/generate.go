package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// Generate validates the input, waits for the configured delay and renders a
// batch of captions. A cancelled context aborts the wait and yields no
// captions. When a later request has already completed, the batch is
// returned with Stale set and is not recorded as the latest one.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Batch, error) {
	if err := input.Validate(s.maxInputLength); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Input)
	style := domain.ResolveStyle(input.Style)
	niche := domain.ResolveNiche(input.Niche)
	seq := s.nextSeq()

	if err := s.wait(ctx, s.delay); err != nil {
		s.log.DebugContext(ctx, "generation aborted",
			slog.Uint64("seq", seq),
			slog.String("reason", err.Error()),
		)
		return nil, fmt.Errorf("generate captions: %w", err)
	}

	batch := &Batch{
		Seq:         seq,
		Input:       text,
		Style:       style,
		Niche:       niche,
		Captions:    s.engine.Render(text, style, niche),
		GeneratedAt: s.now().UTC(),
	}
	batch.Stale = !s.commit(batch)

	s.log.InfoContext(ctx, "captions generated",
		slog.Uint64("seq", seq),
		slog.String("style", style.String()),
		slog.String("niche", niche.String()),
		slog.Int("count", len(batch.Captions)),
		slog.Bool("stale", batch.Stale),
	)

	return batch, nil
}

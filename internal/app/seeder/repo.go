package seeder

import (
	"context"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// CaptionStore is the saved-captions collection the seeder writes into.
type CaptionStore interface {
	Save(ctx context.Context, c domain.Caption) (domain.Caption, bool, error)
	ClearAll(ctx context.Context) int
	Count() int
}

// Renderer turns a prompt into caption candidates.
type Renderer interface {
	Render(input string, style domain.Style, niche domain.Niche) []domain.Caption
}

package saved

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

// DefaultKey is the slot key holding the saved-captions array.
const DefaultKey = "savedCaptions"

// slotStore is a single durable key-value slot. Get returns
// domain.ErrNotFound when nothing has been stored under key.
type slotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Service keeps the saved captions in memory and writes the whole collection
// through to the slot after every mutation.
type Service struct {
	slot slotStore
	key  string
	log  *slog.Logger
	now  func() time.Time

	mu    sync.RWMutex
	items []domain.Caption
}

// NewService creates a new saved-captions store. Call Load before serving.
func NewService(
	log *slog.Logger,
	slot slotStore,
	key string,
) *Service {
	if key == "" {
		key = DefaultKey
	}
	return &Service{
		slot:  slot,
		key:   key,
		log:   log.With("service", "saved"),
		now:   time.Now,
		items: []domain.Caption{},
	}
}

// persist serializes the whole collection into the slot. Failures are logged
// and swallowed; the in-memory state stays authoritative. Caller holds s.mu.
func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal saved captions", slog.String("error", err.Error()))
		return
	}

	// The write must not be cut short by a client that has already gone away.
	if err := s.slot.Put(context.WithoutCancel(ctx), s.key, data); err != nil {
		s.log.ErrorContext(ctx, "write saved captions",
			slog.String("key", s.key),
			slog.Int("count", len(s.items)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(items []domain.Caption) []domain.Caption {
	out := make([]domain.Caption, len(items))
	for i, c := range items {
		out[i] = c.Clone()
	}
	return out
}

func decode(data []byte) ([]domain.Caption, error) {
	var items []domain.Caption
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode saved captions: %w", err)
	}
	if items == nil {
		items = []domain.Caption{}
	}
	return items, nil
}

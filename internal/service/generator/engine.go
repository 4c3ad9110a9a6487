package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

const (
	minEngagement = 70
	maxEngagement = 100
	minLikes      = 100
	maxLikes      = 999
)

// RandSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand delegates to the goroutine-safe top-level math/rand/v2 functions.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Engine renders caption candidates from the static template table.
// It is safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	rnd    RandSource
	now    func() time.Time
	lastID int64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRand injects the random source used for the cosmetic metrics.
func WithRand(r RandSource) EngineOption {
	return func(e *Engine) { e.rnd = r }
}

// WithClock injects the clock used to derive caption ids.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine with the global random source and wall clock
// unless overridden by options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		rnd: globalRand{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render produces one caption per template of style, in template order.
// Unknown styles use the engaging templates and unknown niches the general
// hashtags; the captions carry the resolved style and niche. Input is used
// as given: blank-input rejection is the caller's job.
func (e *Engine) Render(input string, style domain.Style, niche domain.Niche) []domain.Caption {
	if !style.IsValid() {
		style = domain.StyleEngaging
	}
	if !niche.IsValid() {
		niche = domain.NicheGeneral
	}

	templates := Templates(style)

	e.mu.Lock()
	defer e.mu.Unlock()

	baseID := e.reserveIDs(len(templates))

	captions := make([]domain.Caption, len(templates))
	for i, tpl := range templates {
		captions[i] = domain.Caption{
			ID:         baseID + int64(i),
			Text:       strings.ReplaceAll(tpl, Placeholder, input),
			Style:      style,
			Hashtags:   buildHashtags(style, niche),
			Engagement: minEngagement + e.rnd.IntN(maxEngagement-minEngagement+1),
			Likes:      fmt.Sprintf("%dK", minLikes+e.rnd.IntN(maxLikes-minLikes+1)),
			Niche:      niche,
		}
	}
	return captions
}

// reserveIDs returns the first of n consecutive ids. Ids start at the current
// millisecond timestamp but never repeat or go backwards, even when two
// batches are rendered within the same millisecond. Caller holds e.mu.
func (e *Engine) reserveIDs(n int) int64 {
	base := e.now().UnixMilli()
	if base <= e.lastID {
		base = e.lastID + 1
	}
	e.lastID = base + int64(n) - 1
	return base
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/captionkit-backend/pkg/ctxutil"
)

// idleTTL is how long an untouched bucket survives a sweep. A bucket idle
// this long is full again, so dropping it loses nothing.
const idleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Buckets are keyed by
// limit name and client IP, so separately limited routes keep separate budgets.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// bucket holds up to capacity tokens refilled continuously at perSecond.
type bucket struct {
	tokens    float64
	capacity  float64
	perSecond float64
	seen      time.Time
}

// NewRateLimiter creates a limiter that drops idle buckets every
// sweepInterval. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepEvery(sweepInterval)
	return rl
}

// Stop terminates the background sweep.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing perMinute requests per client under name.
// A non-positive perMinute disables limiting. The client comes from the
// ClientIP middleware, falling back to RemoteAddr.
func (rl *RateLimiter) Limit(name string, perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = clientIP(r, false)
			}

			if wait, ok := rl.take(name+"|"+ip, perMinute); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token from key's bucket. When empty it reports how long
// until the next token.
func (rl *RateLimiter) take(key string, perMinute int) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		capacity := float64(perMinute)
		b = &bucket{tokens: capacity, capacity: capacity, perSecond: capacity / 60, seen: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.seen).Seconds()*b.perSecond)
	b.seen = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / b.perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func retryAfterSeconds(wait time.Duration) int {
	return max(1, int(math.Ceil(wait.Seconds())))
}

func (rl *RateLimiter) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.seen) > idleTTL {
			delete(rl.buckets, key)
		}
	}
}

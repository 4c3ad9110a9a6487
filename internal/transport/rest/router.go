package rest

import (
	"net/http"

	"github.com/heartmarshall/captionkit-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Captions      *CaptionHandler
	Hashtags      *HashtagHandler
	Saved         *SavedHandler
	Subscriptions *SubscriptionHandler
}

// Limits wraps individual routes. Nil entries leave the route unwrapped.
type Limits struct {
	Generate  middleware.Middleware
	Subscribe middleware.Middleware
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers, limits Limits) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/captions/generate", middleware.Wrap(h.Captions.Generate, limits.Generate))
	mux.HandleFunc("GET /api/captions/latest", h.Captions.Latest)

	mux.HandleFunc("GET /api/hashtags/trending", h.Hashtags.Trending)
	mux.HandleFunc("GET /api/hashtags/categories", h.Hashtags.Categories)
	mux.HandleFunc("GET /api/hashtags/suggestions", h.Hashtags.Suggestions)

	mux.HandleFunc("GET /api/saved", h.Saved.List)
	mux.HandleFunc("POST /api/saved", h.Saved.Save)
	mux.HandleFunc("DELETE /api/saved", h.Saved.Clear)
	mux.HandleFunc("DELETE /api/saved/{id}", h.Saved.Remove)

	mux.Handle("POST /api/subscriptions", middleware.Wrap(h.Subscriptions.Subscribe, limits.Subscribe))

	return mux
}

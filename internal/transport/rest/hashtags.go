package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

type hashtagCatalog interface {
	Categories() []string
	List(ctx context.Context, category string) ([]domain.TrendingHashtag, error)
	Suggestions(niche string) (domain.Niche, []domain.HashtagGroup)
}

// HashtagHandler serves the trending hashtag and suggestion endpoints.
type HashtagHandler struct {
	svc hashtagCatalog
	log *slog.Logger
}

// NewHashtagHandler creates a HashtagHandler.
func NewHashtagHandler(svc hashtagCatalog, logger *slog.Logger) *HashtagHandler {
	return &HashtagHandler{svc: svc, log: logger.With("handler", "hashtags")}
}

type trendingResponse struct {
	Category string                   `json:"category"`
	Hashtags []domain.TrendingHashtag `json:"hashtags"`
}

type suggestionsResponse struct {
	Niche  domain.Niche          `json:"niche"`
	Groups []domain.HashtagGroup `json:"groups"`
	// CopyLine is every suggested tag as "#a #b ..." ready for the clipboard.
	CopyLine string `json:"copyLine"`
}

// Trending handles GET /api/hashtags/trending?category=.
func (h *HashtagHandler) Trending(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))

	items, err := h.svc.List(r.Context(), category)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if category == "" {
		category = "all"
	}
	writeJSON(w, http.StatusOK, trendingResponse{Category: category, Hashtags: items})
}

// Categories handles GET /api/hashtags/categories.
func (h *HashtagHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": h.svc.Categories()})
}

// Suggestions handles GET /api/hashtags/suggestions?niche=.
func (h *HashtagHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	niche, groups := h.svc.Suggestions(r.URL.Query().Get("niche"))

	var tags []string
	for _, g := range groups {
		for _, tag := range g.Hashtags {
			tags = append(tags, domain.FormatHashtag(tag))
		}
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Niche:    niche,
		Groups:   groups,
		CopyLine: strings.Join(tags, " "),
	})
}

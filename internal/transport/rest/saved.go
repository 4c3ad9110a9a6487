package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/captionkit-backend/internal/domain"
)

type savedStore interface {
	Filter(f domain.SavedFilter) ([]domain.Caption, int)
	Save(ctx context.Context, c domain.Caption) (domain.Caption, bool, error)
	Remove(ctx context.Context, captionID int64) bool
	ClearAll(ctx context.Context) int
}

// SavedHandler serves the saved-captions collection.
type SavedHandler struct {
	svc savedStore
	log *slog.Logger
}

// NewSavedHandler creates a SavedHandler.
func NewSavedHandler(svc savedStore, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{svc: svc, log: logger.With("handler", "saved")}
}

type savedListResponse struct {
	Captions []savedCaption `json:"captions"`
	Filtered int            `json:"filtered"`
	Total    int            `json:"total"`
}

// savedCaption adds the copy-ready hashtag line to a stored caption.
type savedCaption struct {
	domain.Caption
	HashtagLine string `json:"hashtagLine"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

// List handles GET /api/saved?search=&style=.
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, total := h.svc.Filter(domain.SavedFilter{
		Search: q.Get("search"),
		Style:  q.Get("style"),
	})

	out := make([]savedCaption, len(items))
	for i, c := range items {
		out[i] = savedCaption{Caption: c, HashtagLine: c.HashtagLine()}
	}

	writeJSON(w, http.StatusOK, savedListResponse{
		Captions: out,
		Filtered: len(out),
		Total:    total,
	})
}

// Save handles POST /api/saved. It answers 201 for a new entry and 200 when
// the caption was already saved.
func (h *SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	var c domain.Caption
	if !decodeJSON(w, r, &c) {
		return
	}

	saved, created, err := h.svc.Save(r.Context(), c)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, savedCaption{Caption: saved, HashtagLine: saved.HashtagLine()})
}

// Remove handles DELETE /api/saved/{id}. Unknown ids are a no-op and also
// answer 204.
func (h *SavedHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be an integer"))
		return
	}

	h.svc.Remove(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/saved.
func (h *SavedHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, clearResponse{Removed: h.svc.ClearAll(r.Context())})
}

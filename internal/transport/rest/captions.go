package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/captionkit-backend/internal/service/generator"
)

type captionGenerator interface {
	Generate(ctx context.Context, input generator.GenerateInput) (*generator.Batch, error)
	Latest() *generator.Batch
}

// CaptionHandler serves caption generation endpoints.
type CaptionHandler struct {
	svc captionGenerator
	log *slog.Logger
}

// NewCaptionHandler creates a CaptionHandler.
func NewCaptionHandler(svc captionGenerator, logger *slog.Logger) *CaptionHandler {
	return &CaptionHandler{svc: svc, log: logger.With("handler", "captions")}
}

type generateRequest struct {
	Input string `json:"input"`
	Style string `json:"style"`
	Niche string `json:"niche"`
}

// Generate handles POST /api/captions/generate.
func (h *CaptionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	batch, err := h.svc.Generate(r.Context(), generator.GenerateInput{
		Input: req.Input,
		Style: req.Style,
		Niche: req.Niche,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, batch)
}

// Latest handles GET /api/captions/latest. It answers 204 before the first
// successful generation.
func (h *CaptionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	batch := h.svc.Latest()
	if batch == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

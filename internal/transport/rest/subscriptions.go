package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/captionkit-backend/internal/service/subscription"
)

type subscriber interface {
	Subscribe(ctx context.Context, input subscription.SubscribeInput) error
}

// SubscriptionHandler serves the newsletter signup.
type SubscriptionHandler struct {
	svc subscriber
	log *slog.Logger
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc subscriber, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, log: logger.With("handler", "subscriptions")}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscribeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Subscribe handles POST /api/subscriptions.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Subscribe(r.Context(), subscription.SubscribeInput{Email: req.Email}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, subscribeResponse{
		Status:  "subscribed",
		Message: "Thanks for subscribing!",
	})
}

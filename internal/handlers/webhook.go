package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/SamuelOla04/wig-ecom-store/internal/webhook"
)

// maxWebhookBody caps event payloads; Stripe events are small.
const maxWebhookBody = 65536

type WebhookHandler struct {
	Dispatcher *webhook.Dispatcher
}

// Handle verifies and dispatches a Stripe event. The raw body must reach the
// verifier untouched, so no JSON middleware sits in front of this route.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "Webhook Error: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Dispatcher.Dispatch(payload, r.Header.Get("Stripe-Signature")); err != nil {
		slog.Error("Webhook signature verification failed", "error", err)
		http.Error(w, "Webhook Error: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

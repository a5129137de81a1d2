package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/SamuelOla04/wig-ecom-store/internal/payments"
)

type CheckoutHandler struct {
	Payments *payments.Service
}

// CreateCheckoutSession turns the cart into a hosted payment page and hands
// the browser the redirect URL. Never retried here: checkout is
// user-initiated and idempotency is Stripe's via its session semantics.
func (h *CheckoutHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	sess, err := h.Payments.CreateCheckoutSession(r.Context(), &req)
	if err != nil {
		slog.Error("Error creating checkout session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to create checkout session",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": sess.URL, "sessionId": sess.ID})
}

// CreatePaymentIntent supports the custom (non-hosted) checkout flow.
func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	clientSecret, amount, err := h.Payments.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		slog.Error("Error creating payment intent", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to create payment intent",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"clientSecret": clientSecret, "amount": amount})
}

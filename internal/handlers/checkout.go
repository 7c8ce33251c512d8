// internal/handlers/checkout.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
)

// IdempotencyKeyHeader is forwarded to the payment provider unchanged
const IdempotencyKeyHeader = "Idempotency-Key"

// CheckoutHandler prices shipping and starts payments
type CheckoutHandler struct {
	checkout *services.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *services.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger.With(slog.String("handler", "checkout")),
	}
}

// Rates handles POST /checkout/rates
func (h *CheckoutHandler) Rates(w http.ResponseWriter, r *http.Request) {
	var req domain.ShippingRateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rates, err := h.checkout.Rates(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to get shipping rates. Please try again.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"rates": rates})
}

// PaymentIntent handles POST /checkout/payment-intent
func (h *CheckoutHandler) PaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentIntentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	intent, err := h.checkout.CreatePaymentIntent(r.Context(), &req, r.Header.Get(IdempotencyKeyHeader))
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to start payment. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, intent)
}

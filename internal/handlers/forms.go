// internal/handlers/forms.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
)

// FormsHandler accepts the public forms
type FormsHandler struct {
	forms  *services.FormsService
	logger *slog.Logger
}

// NewFormsHandler creates a new forms handler
func NewFormsHandler(forms *services.FormsService, logger *slog.Logger) *FormsHandler {
	return &FormsHandler{
		forms:  forms,
		logger: logger.With(slog.String("handler", "forms")),
	}
}

// Contact handles POST /forms/contact
func (h *FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var form domain.ContactForm
	if err := decodeJSON(w, r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.Contact(r.Context(), &form)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to send message. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// Quote handles POST /forms/quote
func (h *FormsHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.RequestQuote(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to submit quote request. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// SellCar handles POST /forms/sell-car
func (h *FormsHandler) SellCar(w http.ResponseWriter, r *http.Request) {
	var form domain.SellCarForm
	if err := decodeJSON(w, r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.SellCar(r.Context(), &form)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to submit your car details. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// ValidateWarranty handles POST /forms/warranty/validate
func (h *FormsHandler) ValidateWarranty(w http.ResponseWriter, r *http.Request) {
	var req domain.WarrantyValidateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.ValidateWarranty(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to validate invoice. Please try again.")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ClaimWarranty handles POST /forms/warranty/claim
func (h *FormsHandler) ClaimWarranty(w http.ResponseWriter, r *http.Request) {
	var claim domain.WarrantyClaim
	if err := decodeJSON(w, r, &claim); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.ClaimWarranty(r.Context(), &claim)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to submit warranty claim. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// Offer handles POST /catalog/parts/{id}/offer
func (h *FormsHandler) Offer(w http.ResponseWriter, r *http.Request) {
	var req domain.OfferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.forms.SubmitOffer(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeError(w, r, h.logger, err, "Failed to submit offer. Please try again.")
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

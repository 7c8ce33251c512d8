// internal/core/domain/offer.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OfferStatus is the closed set an offer's free-text status maps into
type OfferStatus string

// Offer status constants
const (
	OfferStatusNew      OfferStatus = "new"
	OfferStatusApproved OfferStatus = "approved"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusRead     OfferStatus = "read"
	OfferStatusUnknown  OfferStatus = "unknown"
)

// NormalizeOfferStatus maps any backend status onto an OfferStatus.
// Matching is case-insensitive; unrecognized non-empty values are unknown.
func NormalizeOfferStatus(raw string) OfferStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "new", "pending":
		return OfferStatusNew
	case "approved", "accepted":
		return OfferStatusApproved
	case "rejected", "declined":
		return OfferStatusRejected
	case "read":
		return OfferStatusRead
	default:
		return OfferStatusUnknown
	}
}

// OfferRecord is an offer row as sent by the backend
type OfferRecord struct {
	ID         FlexString `json:"id"`
	PartID     FlexString `json:"partId"`
	PartTitle  FlexString `json:"partTitle"`
	Name       FlexString `json:"name"`
	Email      FlexString `json:"email"`
	Phone      FlexString `json:"phone"`
	OfferPrice FlexString `json:"offerPrice"`
	Message    FlexString `json:"message"`
	Status     FlexString `json:"status"`
	CreatedAt  FlexString `json:"createdAt"`
}

// OfferItem is a customer offer on a part with its status normalized
type OfferItem struct {
	ID         string          `json:"id"`
	PartID     string          `json:"partId"`
	PartTitle  string          `json:"partTitle,omitempty"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	OfferPrice decimal.Decimal `json:"offerPrice"`
	Message    string          `json:"message,omitempty"`
	Status     OfferStatus     `json:"status"`
	RawStatus  string          `json:"rawStatus,omitempty"`
	CreatedAt  string          `json:"createdAt,omitempty"`
}

// NormalizeOffer converts a backend offer record into an OfferItem
func NormalizeOffer(rec OfferRecord) OfferItem {
	price, err := decimal.NewFromString(strings.TrimSpace(rec.OfferPrice.String()))
	if err != nil {
		price = decimal.Zero
	}

	return OfferItem{
		ID:         rec.ID.String(),
		PartID:     rec.PartID.String(),
		PartTitle:  rec.PartTitle.String(),
		Name:       rec.Name.String(),
		Email:      rec.Email.String(),
		Phone:      rec.Phone.String(),
		OfferPrice: price,
		Message:    rec.Message.String(),
		Status:     NormalizeOfferStatus(rec.Status.String()),
		RawStatus:  rec.Status.String(),
		CreatedAt:  rec.CreatedAt.String(),
	}
}

// OfferRequest is a customer offer submitted from a part page
type OfferRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	OfferPrice     decimal.Decimal `json:"offerPrice"`
	Message        string          `json:"message,omitempty"`
	RecaptchaToken string          `json:"recaptchaToken"`
}

// Validate checks the offer form
func (r *OfferRequest) Validate() error {
	errs := FieldErrors{}
	validateName(errs, "name", r.Name)
	validateEmail(errs, "email", r.Email)
	if r.Phone != "" {
		validatePhone(errs, "phone", r.Phone)
	}
	if !r.OfferPrice.IsPositive() {
		errs.Add("offerPrice", "Please enter a valid offer amount")
	}
	if len(r.Message) > maxMessageLength {
		errs.Add("message", "Message is too long")
	}
	return errs.OrNil()
}

// Token returns the reCAPTCHA token attached to the form
func (r *OfferRequest) Token() string { return r.RecaptchaToken }

// OfferStatusUpdate is the admin payload for changing an offer's status
type OfferStatusUpdate struct {
	Status OfferStatus `json:"status"`
}

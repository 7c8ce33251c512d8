// internal/core/domain/commerce.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CartLine is one line of a checkout request
type CartLine struct {
	PartID   string          `json:"partId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Weight   *float64        `json:"weight,omitempty"`
	Length   *float64        `json:"length,omitempty"`
	Width    *float64        `json:"width,omitempty"`
	Height   *float64        `json:"height,omitempty"`
}

// Address is a shipping destination
type Address struct {
	Name       string `json:"name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ShippingRateRequest asks the backend to price a shipment
type ShippingRateRequest struct {
	Destination Address    `json:"destination"`
	Items       []CartLine `json:"items"`
}

// Validate checks the rate request
func (r *ShippingRateRequest) Validate() error {
	errs := FieldErrors{}
	if strings.TrimSpace(r.Destination.PostalCode) == "" {
		errs.Add("destination.postalCode", "Postal code is required")
	}
	if strings.TrimSpace(r.Destination.Country) == "" {
		errs.Add("destination.country", "Country is required")
	}
	if len(r.Items) == 0 {
		errs.Add("items", "Cart is empty")
	}
	for _, it := range r.Items {
		if it.Quantity < 1 {
			errs.Add("items", "Quantity must be at least 1")
		}
	}
	return errs.OrNil()
}

// ShippingRate is one carrier option
type ShippingRate struct {
	ID            FlexString      `json:"id"`
	Carrier       FlexString      `json:"carrier"`
	Service       FlexString      `json:"service"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      FlexString      `json:"currency"`
	EstimatedDays FlexInt         `json:"estimatedDays,omitempty"`
}

// PaymentIntentRequest creates a payment for the cart total
type PaymentIntentRequest struct {
	Items          []CartLine      `json:"items"`
	ShippingRateID string          `json:"shippingRateId,omitempty"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	Currency       string          `json:"currency"`
	Email          string          `json:"email"`
	Amount         int64           `json:"amount"`
}

// Total returns the items subtotal plus shipping
func (r *PaymentIntentRequest) Total() decimal.Decimal {
	total := r.ShippingAmount
	for _, it := range r.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Cents returns Total in minor currency units, rounded half away from zero
func (r *PaymentIntentRequest) Cents() int64 {
	return r.Total().Shift(2).Round(0).IntPart()
}

// Validate checks the payment request
func (r *PaymentIntentRequest) Validate() error {
	errs := FieldErrors{}
	if len(r.Items) == 0 {
		errs.Add("items", "Cart is empty")
	}
	validateEmail(errs, "email", r.Email)
	if r.ShippingAmount.IsNegative() {
		errs.Add("shippingAmount", "Shipping amount cannot be negative")
	}
	if !r.Total().IsPositive() {
		errs.Add("items", "Order total must be positive")
	}
	return errs.OrNil()
}

// PaymentIntent is the backend's payment handle for the client SDK
type PaymentIntent struct {
	ID           FlexString `json:"id"`
	ClientSecret FlexString `json:"clientSecret"`
	Amount       FlexInt    `json:"amount"`
	Currency     FlexString `json:"currency"`
	Status       FlexString `json:"status,omitempty"`
}

// Order is a completed purchase visible to admins
type Order struct {
	ID        FlexString      `json:"id"`
	Email     FlexString      `json:"email"`
	Status    FlexString      `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Currency  FlexString      `json:"currency,omitempty"`
	CreatedAt FlexString      `json:"createdAt"`
}

// UploadFile is one image to send to the uploads endpoint
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedImage is where an uploaded image ended up
type UploadedImage struct {
	ID  FlexString `json:"id,omitempty"`
	URL FlexString `json:"url"`
	Key FlexString `json:"key,omitempty"`
}

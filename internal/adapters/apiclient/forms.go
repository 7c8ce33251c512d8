// internal/adapters/apiclient/forms.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// WarrantyAPI validates invoices and files claims
type WarrantyAPI struct {
	c *Client
}

var _ ports.WarrantyAPI = (*WarrantyAPI)(nil)

// NewWarrantyAPI creates a new warranty resource
func NewWarrantyAPI(c *Client) *WarrantyAPI {
	return &WarrantyAPI{c: c}
}

// Validate checks an invoice is covered
func (a *WarrantyAPI) Validate(ctx context.Context, req *domain.WarrantyValidateRequest) (*domain.WarrantyValidation, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "warranty/validate", nil, req)
	if err != nil {
		return nil, err
	}

	v, err := unwrap[domain.WarrantyValidation](body)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Claim files a warranty claim
func (a *WarrantyAPI) Claim(ctx context.Context, claim *domain.WarrantyClaim) (*domain.SubmissionResult, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "warranty/claim", nil, claim)
	if err != nil {
		return nil, err
	}
	return decodeSubmission(body)
}

// ContactAPI sends general enquiries
type ContactAPI struct {
	c *Client
}

var _ ports.ContactAPI = (*ContactAPI)(nil)

// NewContactAPI creates a new contact resource
func NewContactAPI(c *Client) *ContactAPI {
	return &ContactAPI{c: c}
}

// Send posts the contact form
func (a *ContactAPI) Send(ctx context.Context, form *domain.ContactForm) (*domain.SubmissionResult, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "contact", nil, form)
	if err != nil {
		return nil, err
	}
	return decodeSubmission(body)
}

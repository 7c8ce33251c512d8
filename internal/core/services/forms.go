// internal/core/services/forms.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

// publicForm is a customer form guarded by reCAPTCHA
type publicForm interface {
	Validate() error
	Token() string
}

// FormsService submits the public forms. A form is validated first, then
// its reCAPTCHA token is required; either failure stops the submission
// before any backend call.
type FormsService struct {
	parts    ports.PartsAPI
	cars     ports.CarsAPI
	warranty ports.WarrantyAPI
	contact  ports.ContactAPI
	client   *query.Client
	logger   *slog.Logger
}

// NewFormsService creates a new forms service
func NewFormsService(parts ports.PartsAPI, cars ports.CarsAPI, warranty ports.WarrantyAPI, contact ports.ContactAPI, client *query.Client, logger *slog.Logger) *FormsService {
	return &FormsService{
		parts:    parts,
		cars:     cars,
		warranty: warranty,
		contact:  contact,
		client:   client,
		logger:   logger.With(slog.String("service", "forms")),
	}
}

func checkForm(form publicForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(form.Token()) == "" {
		return ErrRecaptchaRequired
	}
	return nil
}

// SubmitOffer sends a customer offer on a part
func (s *FormsService) SubmitOffer(ctx context.Context, partID string, req *domain.OfferRequest) (*domain.SubmissionResult, error) {
	if strings.TrimSpace(partID) == "" {
		return nil, ErrNotFound
	}
	if err := checkForm(req); err != nil {
		return nil, err
	}

	res, err := query.Mutate(ctx, s.client, func(ctx context.Context) (*domain.SubmissionResult, error) {
		return s.parts.SubmitOffer(ctx, partID, req)
	}, []query.Family{query.FamilyOffers})
	if err != nil {
		return nil, fmt.Errorf("failed to submit offer: %w", err)
	}

	s.logger.InfoContext(ctx, "offer submitted",
		slog.String("part_id", partID),
		slog.String("amount", req.OfferPrice.StringFixed(2)))
	return res, nil
}

// RequestQuote sends a part quote request
func (s *FormsService) RequestQuote(ctx context.Context, req *domain.QuoteRequest) (*domain.SubmissionResult, error) {
	if err := checkForm(req); err != nil {
		return nil, err
	}

	res, err := s.parts.RequestQuote(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to request quote: %w", err)
	}

	s.logger.InfoContext(ctx, "quote requested")
	return res, nil
}

// SellCar sends the sell-your-car form
func (s *FormsService) SellCar(ctx context.Context, form *domain.SellCarForm) (*domain.SubmissionResult, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	res, err := s.cars.SubmitSellForm(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to submit sell form: %w", err)
	}

	s.logger.InfoContext(ctx, "sell car form submitted")
	return res, nil
}

// ValidateWarranty checks an invoice before a claim is filed
func (s *FormsService) ValidateWarranty(ctx context.Context, req *domain.WarrantyValidateRequest) (*domain.WarrantyValidation, error) {
	if err := checkForm(req); err != nil {
		return nil, err
	}

	res, err := s.warranty.Validate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate warranty: %w", err)
	}
	return res, nil
}

// ClaimWarranty files a warranty claim
func (s *FormsService) ClaimWarranty(ctx context.Context, claim *domain.WarrantyClaim) (*domain.SubmissionResult, error) {
	if err := checkForm(claim); err != nil {
		return nil, err
	}

	res, err := s.warranty.Claim(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("failed to file warranty claim: %w", err)
	}

	s.logger.InfoContext(ctx, "warranty claim filed")
	return res, nil
}

// Contact sends a general enquiry
func (s *FormsService) Contact(ctx context.Context, form *domain.ContactForm) (*domain.SubmissionResult, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	res, err := s.contact.Send(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to send contact form: %w", err)
	}

	s.logger.InfoContext(ctx, "contact form sent")
	return res, nil
}

// internal/core/services/checkout.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
	"github.com/ammerola/wreckers-gateway/internal/core/query"
)

const defaultCurrency = "aud"

// CheckoutService prices shipping, starts payments and lists orders
type CheckoutService struct {
	shipping ports.ShippingAPI
	payments ports.PaymentsAPI
	orders   ports.OrdersAPI
	client   *query.Client
	opts     query.Options
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(shipping ports.ShippingAPI, payments ports.PaymentsAPI, orders ports.OrdersAPI, client *query.Client, opts query.Options, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		shipping: shipping,
		payments: payments,
		orders:   orders,
		client:   client,
		opts:     opts,
		logger:   logger.With(slog.String("service", "checkout")),
	}
}

// Rates returns the shipping options for a destination
func (s *CheckoutService) Rates(ctx context.Context, req *domain.ShippingRateRequest) ([]domain.ShippingRate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rates, err := s.shipping.Rates(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipping rates: %w", err)
	}
	return rates, nil
}

// CreatePaymentIntent starts a payment for the cart total. The amount is
// always computed here from the cart; an empty idempotency key gets a fresh
// one.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest, idempotencyKey string) (*domain.PaymentIntent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Amount = req.Cents()
	req.Currency = strings.ToLower(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}
	if strings.TrimSpace(idempotencyKey) == "" {
		idempotencyKey = uuid.NewString()
	}

	intent, err := s.payments.CreateIntent(ctx, req, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.InfoContext(ctx, "payment intent created",
		slog.String("intent_id", intent.ID.String()),
		slog.Int64("amount", req.Amount),
		slog.String("currency", req.Currency))
	return intent, nil
}

// Orders lists orders for the admin console
func (s *CheckoutService) Orders(ctx context.Context, params domain.ListParams) (*domain.OrdersPage, error) {
	params = params.Normalize()
	page, err := query.Fetch(ctx, s.client, query.OrdersKey(params), s.opts, func(ctx context.Context) (*domain.OrdersPage, error) {
		return s.orders.List(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return page, nil
}

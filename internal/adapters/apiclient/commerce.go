// internal/adapters/apiclient/commerce.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/ports"
)

// ShippingAPI prices shipments
type ShippingAPI struct {
	c *Client
}

var _ ports.ShippingAPI = (*ShippingAPI)(nil)

// NewShippingAPI creates a new shipping resource
func NewShippingAPI(c *Client) *ShippingAPI {
	return &ShippingAPI{c: c}
}

// Rates returns the carrier options for a destination and cart
func (a *ShippingAPI) Rates(ctx context.Context, req *domain.ShippingRateRequest) ([]domain.ShippingRate, error) {
	body, err := a.c.doJSON(ctx, http.MethodPost, "shipping/rates", nil, req)
	if err != nil {
		return nil, err
	}
	return unwrap[[]domain.ShippingRate](body, "rates")
}

// PaymentsAPI creates payment intents
type PaymentsAPI struct {
	c *Client
}

var _ ports.PaymentsAPI = (*PaymentsAPI)(nil)

// NewPaymentsAPI creates a new payments resource
func NewPaymentsAPI(c *Client) *PaymentsAPI {
	return &PaymentsAPI{c: c}
}

// CreateIntent creates a payment intent. The idempotency key lets the
// backend collapse retried submissions of the same checkout.
func (a *PaymentsAPI) CreateIntent(ctx context.Context, req *domain.PaymentIntentRequest, idempotencyKey string) (*domain.PaymentIntent, error) {
	var opts []requestOption
	if idempotencyKey != "" {
		opts = append(opts, withHeader("Idempotency-Key", idempotencyKey))
	}

	body, err := a.c.doJSON(ctx, http.MethodPost, "payments/create-intent", nil, req, opts...)
	if err != nil {
		return nil, err
	}

	intent, err := unwrap[domain.PaymentIntent](body, "paymentIntent")
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// OrdersAPI lists orders for admins
type OrdersAPI struct {
	c *Client
}

var _ ports.OrdersAPI = (*OrdersAPI)(nil)

// NewOrdersAPI creates a new orders resource
func NewOrdersAPI(c *Client) *OrdersAPI {
	return &OrdersAPI{c: c}
}

// List fetches one page of orders
func (a *OrdersAPI) List(ctx context.Context, params domain.ListParams) (*domain.OrdersPage, error) {
	body, err := a.c.doJSON(ctx, http.MethodGet, "orders", listQuery(params), nil)
	if err != nil {
		return nil, err
	}

	orders, pagination, err := decodePage[domain.Order](body, "orders")
	if err != nil {
		return nil, err
	}
	return &domain.OrdersPage{Items: orders, Pagination: pagination}, nil
}

// internal/core/services/checkout_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
	"github.com/ammerola/wreckers-gateway/internal/core/services"
	"github.com/ammerola/wreckers-gateway/test/helpers"
	"github.com/ammerola/wreckers-gateway/test/mocks"
)

func cart() *domain.PaymentIntentRequest {
	return &domain.PaymentIntentRequest{
		Items: []domain.CartLine{
			{PartID: "p-1", Quantity: 2, Price: decimal.RequireFromString("12.34")},
			{PartID: "p-2", Quantity: 1, Price: decimal.RequireFromString("2.49")},
		},
		ShippingAmount: decimal.RequireFromString("9.94"),
		Email:          "jane@example.com",
		Amount:         1,
	}
}

func TestCheckoutService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		req        func() *domain.PaymentIntentRequest
		key        string
		setupMocks func(t *testing.T, m *mocks.MockPaymentsAPI)
		expectErr  bool
	}{
		{
			name: "amount_is_computed_and_key_generated",
			req:  cart,
			setupMocks: func(t *testing.T, m *mocks.MockPaymentsAPI) {
				m.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.PaymentIntentRequest, key string) (*domain.PaymentIntent, error) {
						assert.Equal(t, int64(3711), req.Amount, "client supplied amount is ignored")
						assert.Equal(t, "aud", req.Currency)
						_, err := uuid.Parse(key)
						assert.NoError(t, err)
						return &domain.PaymentIntent{ID: "pi_1", ClientSecret: "secret", Amount: domain.FlexInt(req.Amount)}, nil
					})
			},
		},
		{
			name: "caller_key_and_currency_are_kept",
			req: func() *domain.PaymentIntentRequest {
				r := cart()
				r.Currency = " NZD "
				return r
			},
			key: "order-42",
			setupMocks: func(t *testing.T, m *mocks.MockPaymentsAPI) {
				m.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any(), "order-42").
					DoAndReturn(func(_ context.Context, req *domain.PaymentIntentRequest, _ string) (*domain.PaymentIntent, error) {
						assert.Equal(t, "nzd", req.Currency)
						return &domain.PaymentIntent{ID: "pi_2"}, nil
					})
			},
		},
		{
			name: "empty_cart_is_rejected",
			req: func() *domain.PaymentIntentRequest {
				r := cart()
				r.Items = nil
				return r
			},
			setupMocks: func(t *testing.T, m *mocks.MockPaymentsAPI) {},
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			payments := mocks.NewMockPaymentsAPI(ctrl)
			tt.setupMocks(t, payments)

			client, _ := newQueryClient(t)
			svc := services.NewCheckoutService(nil, payments, nil, client, cached, helpers.TestLogger())

			intent, err := svc.CreatePaymentIntent(context.Background(), tt.req(), tt.key)
			if tt.expectErr {
				var fields domain.FieldErrors
				assert.True(t, errors.As(err, &fields))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, intent.ID)
		})
	}
}

func TestCheckoutService_Rates(t *testing.T) {
	ctrl := gomock.NewController(t)
	shipping := mocks.NewMockShippingAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewCheckoutService(shipping, nil, nil, client, cached, helpers.TestLogger())

	t.Run("missing_postcode", func(t *testing.T) {
		_, err := svc.Rates(context.Background(), &domain.ShippingRateRequest{
			Destination: domain.Address{Country: "AU"},
			Items:       []domain.CartLine{{PartID: "p-1", Quantity: 1}},
		})
		var fields domain.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.Contains(t, fields, "destination.postalCode")
	})

	t.Run("returns_backend_rates", func(t *testing.T) {
		shipping.EXPECT().Rates(gomock.Any(), gomock.Any()).Return([]domain.ShippingRate{
			{ID: "std", Carrier: "AusPost", Amount: decimal.RequireFromString("14.95")},
		}, nil)

		rates, err := svc.Rates(context.Background(), &domain.ShippingRateRequest{
			Destination: domain.Address{PostalCode: "4000", Country: "AU"},
			Items:       []domain.CartLine{{PartID: "p-1", Quantity: 1}},
		})
		require.NoError(t, err)
		require.Len(t, rates, 1)
		assert.Equal(t, "14.95", rates[0].Amount.StringFixed(2))
	})
}

func TestCheckoutService_Orders(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrdersAPI(ctrl)
	client, _ := newQueryClient(t)
	svc := services.NewCheckoutService(nil, nil, orders, client, cached, helpers.TestLogger())

	orders.EXPECT().
		List(gomock.Any(), domain.ListParams{Page: 1, PageSize: 20, Status: "paid"}).
		Return(&domain.OrdersPage{Items: []domain.Order{{ID: "o-1"}}}, nil)

	page, err := svc.Orders(context.Background(), domain.ListParams{Status: "paid"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

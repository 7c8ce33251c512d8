package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

type validator interface {
	Validate() error
}

func TestForms_Validate(t *testing.T) {
	tests := []struct {
		name          string
		form          validator
		invalidFields []string
	}{
		{
			name: "contact_valid",
			form: &domain.ContactForm{Name: "Alex Doe", Email: "alex@example.com", Message: "Do you have a gearbox?"},
		},
		{
			name:          "contact_short_message",
			form:          &domain.ContactForm{Name: "Alex Doe", Email: "alex@example.com", Message: "hi"},
			invalidFields: []string{"message"},
		},
		{
			name:          "contact_bad_email_and_phone",
			form:          &domain.ContactForm{Name: "Alex", Email: "alex@", Phone: "abc", Message: "long enough message"},
			invalidFields: []string{"email", "phone"},
		},
		{
			name: "contact_message_too_long",
			form: &domain.ContactForm{
				Name: "Alex", Email: "a@b.co", Message: strings.Repeat("x", 1001),
			},
			invalidFields: []string{"message"},
		},
		{
			name: "quote_valid",
			form: &domain.QuoteRequest{
				Name: "Pat Lee", Email: "pat@example.com", Phone: "+61 400 000 000",
				Make: "TOYOTA", Model: "COROLLA", Year: "2009", VIN: "JTDBR32E720123456",
				PartName: "Starter motor", Quantity: 1,
			},
		},
		{
			name: "quote_bad_vin_year_quantity",
			form: &domain.QuoteRequest{
				Name: "Pat Lee", Email: "pat@example.com", Phone: "0400000000",
				Make: "TOYOTA", Model: "COROLLA", Year: "1890", VIN: "JTDBR32E72O123456",
				PartName: "Starter", Quantity: 0,
			},
			invalidFields: []string{"vin", "year", "quantity"},
		},
		{
			name: "sell_car_missing_vehicle",
			form: &domain.SellCarForm{
				Name: "Sam Poe", Email: "sam@example.com", Phone: "0400 000 000",
			},
			invalidFields: []string{"make", "model", "year"},
		},
		{
			name:          "warranty_validate_missing_invoice",
			form:          &domain.WarrantyValidateRequest{Email: "x@y.io"},
			invalidFields: []string{"invoiceNumber"},
		},
		{
			name: "warranty_claim_valid",
			form: &domain.WarrantyClaim{
				InvoiceNumber: "INV-9", Name: "Kim Park", Email: "kim@example.com",
				Phone: "0400000000", Issue: "The alternator stopped charging",
			},
		},
		{
			name:          "post_bad_status",
			form:          &domain.WpPostInput{Title: "Hello", Status: "archived"},
			invalidFields: []string{"status"},
		},
		{
			name: "shipping_empty_cart",
			form: &domain.ShippingRateRequest{
				Destination: domain.Address{PostalCode: "2000", Country: "AU"},
			},
			invalidFields: []string{"items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if len(tt.invalidFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var fields domain.FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Len(t, fields, len(tt.invalidFields))
			for _, f := range tt.invalidFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	errs := domain.FieldErrors{}
	assert.NoError(t, errs.OrNil())

	errs.Add("name", "first")
	errs.Add("name", "second")
	errs.Add("email", "bad")

	assert.Equal(t, "first", errs["name"])
	assert.Equal(t, "validation failed: email: bad; name: first", errs.Error())
}

func TestPaymentIntentRequest_Total(t *testing.T) {
	req := domain.PaymentIntentRequest{
		Items: []domain.CartLine{
			{PartID: "a", Quantity: 2, Price: decimal.RequireFromString("10.005")},
			{PartID: "b", Quantity: 1, Price: decimal.RequireFromString("5.10")},
		},
		ShippingAmount: decimal.RequireFromString("12.00"),
		Email:          "buyer@example.com",
	}

	assert.Equal(t, "37.11", req.Total().StringFixed(2))
	assert.Equal(t, int64(3711), req.Cents())
	assert.NoError(t, req.Validate())
}

package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

func TestNormalizeOfferStatus(t *testing.T) {
	tests := []struct {
		in       string
		expected domain.OfferStatus
	}{
		{in: "accepted", expected: domain.OfferStatusApproved},
		{in: "Accepted", expected: domain.OfferStatusApproved},
		{in: "", expected: domain.OfferStatusNew},
		{in: "pending", expected: domain.OfferStatusNew},
		{in: "weird-value", expected: domain.OfferStatusUnknown},
		{in: "APPROVED", expected: domain.OfferStatusApproved},
		{in: " declined ", expected: domain.OfferStatusRejected},
		{in: "rejected", expected: domain.OfferStatusRejected},
		{in: "Read", expected: domain.OfferStatusRead},
		{in: "new", expected: domain.OfferStatusNew},
	}

	for _, tt := range tests {
		t.Run("status_"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeOfferStatus(tt.in))
		})
	}
}

func TestNormalizeOffer(t *testing.T) {
	body := `{"id":5,"partId":"p-1","name":"Sam","email":"sam@example.com",
		"offerPrice":"149.50","status":"Accepted","createdAt":"2025-01-02"}`

	var rec domain.OfferRecord
	require.NoError(t, json.Unmarshal([]byte(body), &rec))

	offer := domain.NormalizeOffer(rec)

	assert.Equal(t, "5", offer.ID)
	assert.Equal(t, "p-1", offer.PartID)
	assert.Equal(t, domain.OfferStatusApproved, offer.Status)
	assert.Equal(t, "Accepted", offer.RawStatus)
	assert.True(t, decimal.RequireFromString("149.50").Equal(offer.OfferPrice))
}

func TestNormalizeOffer_BadPrice(t *testing.T) {
	offer := domain.NormalizeOffer(domain.OfferRecord{ID: "1", OfferPrice: "n/a"})
	assert.True(t, offer.OfferPrice.IsZero())
	assert.Equal(t, domain.OfferStatusNew, offer.Status)
}

func TestOfferRequest_Validate(t *testing.T) {
	valid := domain.OfferRequest{
		Name:       "Jo Smith",
		Email:      "jo@example.com",
		OfferPrice: decimal.NewFromInt(50),
	}
	assert.NoError(t, valid.Validate())

	invalid := domain.OfferRequest{Name: "", Email: "bad", OfferPrice: decimal.Zero}
	var fields domain.FieldErrors
	require.ErrorAs(t, invalid.Validate(), &fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "offerPrice")
}

func TestCar_EffectiveID(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int64
	}{
		{name: "cid_wins", body: `{"cid":10,"ID":20}`, expected: 10},
		{name: "falls_back_to_ID", body: `{"cid":0,"ID":20}`, expected: 20},
		{name: "string_cid", body: `{"cid":"33"}`, expected: 33},
		{name: "null_cid", body: `{"cid":null,"ID":"44"}`, expected: 44},
		{name: "neither", body: `{}`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var car domain.Car
			require.NoError(t, json.Unmarshal([]byte(tt.body), &car))
			assert.Equal(t, tt.expected, car.EffectiveID())
		})
	}
}

func TestCarInput_Validate(t *testing.T) {
	assert.NoError(t, (&domain.CarInput{Name: "Civic", Make: "HONDA", Year: "2008"}).Validate())

	var fields domain.FieldErrors
	require.ErrorAs(t, (&domain.CarInput{Year: "08"}).Validate(), &fields)
	assert.Len(t, fields, 3)
}

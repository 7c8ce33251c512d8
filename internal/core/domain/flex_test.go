package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStr(t *testing.T) {
	s := "ptr"
	var nilPtr *string

	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{name: "nil", in: nil, expected: ""},
		{name: "string", in: "abc", expected: "abc"},
		{name: "float_integral", in: float64(42), expected: "42"},
		{name: "float_fraction", in: 12.75, expected: "12.75"},
		{name: "json_number", in: json.Number("1e3"), expected: "1e3"},
		{name: "int", in: 7, expected: "7"},
		{name: "bool", in: true, expected: "true"},
		{name: "string_pointer", in: &s, expected: "ptr"},
		{name: "nil_string_pointer", in: nilPtr, expected: ""},
		{name: "flex_string", in: FlexString("f"), expected: "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, str(tt.in))
		})
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected *float64
	}{
		{name: "positive_float", in: 2.5, expected: fp(2.5)},
		{name: "positive_int", in: 3, expected: fp(3)},
		{name: "json_number", in: json.Number("4.5"), expected: fp(4.5)},
		{name: "numeric_string", in: "10", expected: fp(10)},
		{name: "zero", in: 0.0, expected: nil},
		{name: "negative", in: -1, expected: nil},
		{name: "nan", in: math.NaN(), expected: nil},
		{name: "inf", in: math.Inf(1), expected: nil},
		{name: "text", in: "abc", expected: nil},
		{name: "nil", in: nil, expected: nil},
		{name: "nil_pointer", in: (*float64)(nil), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, num(tt.in))
		})
	}
}

func TestFlexDecoding(t *testing.T) {
	var v struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
		D FlexInt    `json:"d"`
		E FlexInt    `json:"e"`
		F FlexInt    `json:"f"`
		G FlexInt    `json:"g"`
	}

	body := `{"a":12,"b":null,"c":"text","d":"15","e":"nope","f":null,"g":7.9}`
	require.NoError(t, json.Unmarshal([]byte(body), &v))

	assert.Equal(t, FlexString("12"), v.A)
	assert.Equal(t, FlexString(""), v.B)
	assert.Equal(t, FlexString("text"), v.C)
	assert.Equal(t, FlexInt(15), v.D)
	assert.Equal(t, FlexInt(0), v.E)
	assert.Equal(t, FlexInt(0), v.F)
	assert.Equal(t, FlexInt(7), v.G)
	assert.Equal(t, "15", v.D.String())
	assert.Equal(t, "", v.F.String())
}

func fp(v float64) *float64 {
	return &v
}

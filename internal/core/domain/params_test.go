package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/wreckers-gateway/internal/core/domain"
)

func TestPartsParams_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.PartsParams
		expected domain.PartsParams
	}{
		{
			name:     "defaults_filled_in",
			in:       domain.PartsParams{},
			expected: domain.PartsParams{Page: 1, PageSize: domain.DefaultPageSize},
		},
		{
			name:     "negative_page_reset",
			in:       domain.PartsParams{Page: -3, PageSize: 12},
			expected: domain.PartsParams{Page: 1, PageSize: 12},
		},
		{
			name:     "large_page_size_passed_through",
			in:       domain.PartsParams{Page: 2, PageSize: 250, Make: "TOYOTA"},
			expected: domain.PartsParams{Page: 2, PageSize: 250, Make: "TOYOTA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

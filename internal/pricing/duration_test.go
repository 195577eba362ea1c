package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/respite-booking/backend/internal/pricing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5 hours", 1.5},
		{"45 minutes", 0.75},
		{"1 hour", 1},
		{"30 minute", 0.5},
		{"  2 HOURS  ", 2},
		{"3", 3},
		{"0.25", 0.25},
		{"90 mins", 1.5},
		{"2hrs", 2},
		{"", 0},
		{"garbage", 0},
		{"-2 hours", 0},
		{"hours", 0},
		{"2 days", 0},
		{"1 hr 30 mins", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.ParseDuration(tc.in), 1e-9)
		})
	}
}

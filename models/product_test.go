package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayOriginalPrice_SynthesizedWhenAbsent(t *testing.T) {
	p := Product{Price: 100}
	assert.InDelta(t, 120.0, p.DisplayOriginalPrice(), 0.001,
		"missing original price renders as price × 1.2")
	assert.Nil(t, p.OriginalPrice, "the synthesized value must never be stored back")
}

func TestDisplayOriginalPrice_StoredValueWins(t *testing.T) {
	op := 150.0
	p := Product{Price: 100, OriginalPrice: &op}
	assert.InDelta(t, 150.0, p.DisplayOriginalPrice(), 0.001)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		originalPrice *float64
		want          int
	}{
		{"no original price means no badge", 80, nil, 0},
		{"80 from 100 is 20 percent", 80, ptr(100.0), 20},
		{"rounding up", 66.6, ptr(100.0), 33},
		{"original equal to price", 50, ptr(50.0), 0},
		{"original below price", 50, ptr(40.0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.originalPrice}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func ptr(f float64) *float64 { return &f }

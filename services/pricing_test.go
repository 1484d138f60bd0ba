package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name         string
		unitPrice    float64
		adults       int
		children     int
		seatSelected bool
		want         float64
	}{
		{"single adult", 100, 1, 0, false, 100},
		{"two adults one child with seat", 100, 2, 1, true, 300},
		{"children at half rate", 200, 1, 2, false, 400},
		{"seat fee flat regardless of party size", 100, 5, 5, true, 800},
		{"zero price", 0, 2, 2, false, 0},
		{"fractional unit price", 99.50, 2, 1, false, 248.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotal(tt.unitPrice, tt.adults, tt.children, tt.seatSelected)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTotalDeterministic(t *testing.T) {
	first := CalculateTotal(149.99, 3, 2, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateTotal(149.99, 3, 2, true))
	}
}

func TestSeatFeeIndependentOfSeatNumber(t *testing.T) {
	// The fee applies when seat selection is on, whatever seat is picked.
	withSeat := CalculateTotal(100, 2, 0, true)
	withoutSeat := CalculateTotal(100, 2, 0, false)
	assert.Equal(t, SeatSelectionFee, withSeat-withoutSeat)
}

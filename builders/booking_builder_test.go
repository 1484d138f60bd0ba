package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilder(t *testing.T) {
	seatID := uint(4)
	discountID := uint(9)

	booking := NewBookingBuilder().
		WithPackage(1).
		WithTraveler("Nino Khundadze", "nino@example.com", "555123456", "12345678901").
		WithPartySize(2, 1).
		WithSeat("12A", true, &seatID).
		WithDiscount(&discountID).
		WithTotalPrice(300).
		Build()

	assert.Equal(t, uint(1), booking.PackageID)
	assert.Equal(t, "Nino Khundadze", booking.Name)
	assert.Equal(t, "nino@example.com", booking.Email)
	assert.Equal(t, "12345678901", booking.IDNumber)
	assert.Equal(t, 2, booking.Adults)
	assert.Equal(t, 1, booking.Children)
	assert.Equal(t, 3, booking.Travelers())
	assert.Equal(t, "12A", booking.SeatNumber)
	assert.True(t, booking.SeatSelected)
	assert.Equal(t, seatID, *booking.SeatID)
	assert.Equal(t, discountID, *booking.DiscountID)
	assert.Equal(t, 300.0, booking.TotalPrice)
}

func TestBookingBuilderDefaults(t *testing.T) {
	booking := NewBookingBuilder().WithPackage(2).Build()

	assert.Equal(t, uint(2), booking.PackageID)
	assert.Nil(t, booking.SeatID)
	assert.Nil(t, booking.DiscountID)
	assert.False(t, booking.SeatSelected)
	assert.Zero(t, booking.TotalPrice)
}

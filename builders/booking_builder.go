package builders

import (
	"geotrip/models"
)

// BookingBuilder assembles a booking step by step from the submission
// payload.
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a new BookingBuilder.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithPackage sets the booked package.
func (b *BookingBuilder) WithPackage(packageID uint) *BookingBuilder {
	b.booking.PackageID = packageID
	return b
}

// WithTraveler sets the lead traveler's contact details.
func (b *BookingBuilder) WithTraveler(name, email, phone, idNumber string) *BookingBuilder {
	b.booking.Name = name
	b.booking.Email = email
	b.booking.Phone = phone
	b.booking.IDNumber = idNumber
	return b
}

// WithPartySize sets the traveler counts.
func (b *BookingBuilder) WithPartySize(adults, children int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithSeat sets the optional seat selection.
func (b *BookingBuilder) WithSeat(seatNumber string, seatSelected bool, seatID *uint) *BookingBuilder {
	b.booking.SeatNumber = seatNumber
	b.booking.SeatSelected = seatSelected
	b.booking.SeatID = seatID
	return b
}

// WithDiscount sets the optional discount reference.
func (b *BookingBuilder) WithDiscount(discountID *uint) *BookingBuilder {
	b.booking.DiscountID = discountID
	return b
}

// WithTotalPrice sets the computed total.
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build returns the assembled booking.
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}

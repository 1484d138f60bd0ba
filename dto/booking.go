package dto

import "time"

// CreateBookingRequest is the public booking form payload. DateID is
// required for bus tours and selects the departure occurrence; regular tours
// take their dates from the package itself.
type CreateBookingRequest struct {
	PackageID    uint    `json:"packageId"`
	DateID       *uint   `json:"dateId,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	IDNumber     string  `json:"idNumber"`
	Date         string  `json:"date,omitempty"` // yyyy-mm-dd, regular tours only; defaults to today
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	TotalPrice   float64 `json:"totalPrice"`
	SeatNumber   string  `json:"seatNumber,omitempty"`
	SeatSelected bool    `json:"seatSelected"`
	SeatID       *uint   `json:"seatId,omitempty"`
	DiscountID   *uint   `json:"discountId,omitempty"`
}

// UpdateBookingRequest is the admin edit payload.
type UpdateBookingRequest struct {
	ID           uint     `json:"id" binding:"required"`
	Name         *string  `json:"name,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	IDNumber     *string  `json:"idNumber,omitempty"`
	Adults       *int     `json:"adults,omitempty"`
	Children     *int     `json:"children,omitempty"`
	TotalPrice   *float64 `json:"totalPrice,omitempty"`
	SeatNumber   *string  `json:"seatNumber,omitempty"`
	SeatSelected *bool    `json:"seatSelected,omitempty"`
}

// QuoteRequest asks for a price and availability preview for the current
// form inputs. The form re-requests a quote whenever package, traveler
// counts, or the seat flag change so the shown estimate always matches what
// will be submitted.
type QuoteRequest struct {
	PackageID    uint  `json:"packageId"`
	DateID       *uint `json:"dateId,omitempty"`
	Adults       int   `json:"adults"`
	Children     int   `json:"children"`
	SeatSelected bool  `json:"seatSelected"`
}

type QuoteResponse struct {
	PackageID     uint    `json:"packageId"`
	UnitPrice     float64 `json:"unitPrice"`
	AdultsTotal   float64 `json:"adultsTotal"`
	ChildrenTotal float64 `json:"childrenTotal"`
	SeatFee       float64 `json:"seatFee"`
	Total         float64 `json:"total"`
	Remaining     int     `json:"remaining"`
	HasDates      bool    `json:"hasDates"`
}

type BookingPackageResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	ByBus    bool    `json:"byBus"`
	Category string  `json:"category"`
	Location string  `json:"location"`
}

type BookingPaymentResponse struct {
	ID     uint    `json:"id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type BookingResponse struct {
	ID               uint                    `json:"id"`
	ConfirmationCode string                  `json:"confirmationCode"`
	Package          BookingPackageResponse  `json:"package"`
	Payment          *BookingPaymentResponse `json:"payment,omitempty"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone,omitempty"`
	IDNumber         string                  `json:"idNumber"`
	Adults           int                     `json:"adults"`
	Children         int                     `json:"children"`
	StartDate        *time.Time              `json:"startDate"`
	EndDate          *time.Time              `json:"endDate"`
	TotalPrice       float64                 `json:"totalPrice"`
	SeatNumber       string                  `json:"seatNumber,omitempty"`
	SeatSelected     bool                    `json:"seatSelected"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

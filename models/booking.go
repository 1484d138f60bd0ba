package models

import (
	"time"
)

type Booking struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	PackageID     uint         `json:"packageId"`
	Package       Package      `json:"package" gorm:"foreignKey:PackageID"`
	PackageDateID *uint        `json:"packageDateId,omitempty"` // set for bus tours; older rows matched by calendar day
	PackageDate   *PackageDate `json:"packageDate,omitempty" gorm:"foreignKey:PackageDateID"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	IDNumber string `json:"idNumber" gorm:"column:id_number;size:11"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	StartDate *time.Time `json:"startDate"` // copied from the package or the chosen occurrence
	EndDate   *time.Time `json:"endDate"`

	TotalPrice   float64 `json:"totalPrice"`
	SeatNumber   string  `json:"seatNumber,omitempty"`
	SeatSelected bool    `json:"seatSelected"`
	SeatID       *uint   `json:"seatId,omitempty"`
	Seat         *Seat   `json:"seat,omitempty" gorm:"foreignKey:SeatID"`

	DiscountID *uint     `json:"discountId,omitempty"`
	Discount   *Discount `json:"discount,omitempty" gorm:"foreignKey:DiscountID"`

	ConfirmationCode string   `json:"confirmationCode" gorm:"size:36"`
	Payment          *Payment `json:"payment,omitempty" gorm:"foreignKey:BookingID"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Travelers returns the total head count of the booking.
func (b *Booking) Travelers() int {
	return b.Adults + b.Children
}

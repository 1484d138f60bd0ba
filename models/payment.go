package models

import (
	"fmt"
	"time"

	"geotrip/constants"
)

// Payment tracks the amount owed for a booking. Exactly one payment exists
// per booking; it is created with status "pending" in the same transaction
// as the booking itself.
type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId" gorm:"uniqueIndex"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status" gorm:"size:20;default:pending"` // pending | paid | failed | cancelled
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Payment) ValidateStatus() error {
	if !constants.IsValidPaymentStatus(p.Status) {
		return fmt.Errorf("invalid Status: %q, must be one of pending, paid, failed, cancelled", p.Status)
	}
	return nil
}

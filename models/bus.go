package models

import (
	"fmt"
	"time"
)

type Bus struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	SeatCount int       `json:"seatCount"`
	PackageID uint      `json:"packageId"`
	Seats     []Seat    `json:"seats,omitempty" gorm:"foreignKey:BusID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Bus) ValidateSeatCount() error {
	if b.SeatCount <= 0 {
		return fmt.Errorf("invalid SeatCount: %d, must be positive", b.SeatCount)
	}
	return nil
}

type Seat struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Number    string    `json:"number"`
	BusID     uint      `json:"busId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

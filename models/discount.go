package models

import (
	"fmt"
	"time"
)

type Discount struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Code      string    `json:"code" gorm:"unique;size:20"`
	Quantity  int       `json:"quantity"`
	FromDate  string    `json:"fromDate"` // dd/mm/yyyy
	ToDate    string    `json:"toDate"`
	Discount  int       `json:"discount"` // percentage, 0-100
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Discount) ValidateStatus() error {
	if d.Status < 0 || d.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", d.Status)
	}
	return nil
}

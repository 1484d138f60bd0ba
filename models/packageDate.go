package models

import (
	"fmt"
	"time"
)

// PackageDate is one scheduled departure/return occurrence of a bus tour.
// Each occurrence has its own capacity, independent of the package-level
// MaxPeople.
type PackageDate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PackageID uint      `json:"packageId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	MaxPeople int       `json:"maxPeople"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *PackageDate) Validate() error {
	if d.EndDate.Before(d.StartDate) {
		return fmt.Errorf("invalid date range: end %s before start %s",
			d.EndDate.Format("2006-01-02"), d.StartDate.Format("2006-01-02"))
	}
	if d.MaxPeople <= 0 {
		return fmt.Errorf("invalid MaxPeople: %d, must be positive", d.MaxPeople)
	}
	return nil
}

package models

import (
	"fmt"
	"time"
)

type Package struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`               // adult price per person
	SalePrice   *float64       `json:"salePrice,omitempty"` // promotional price, optional
	Duration    string         `json:"duration"`            // e.g. "3 days / 2 nights"
	MaxPeople   int            `json:"maxPeople"`           // capacity for regular tours
	Popular     bool           `json:"popular"`
	ByBus       bool           `json:"byBus"` // bus tours carry capacity per date occurrence
	Category    string         `json:"category"`
	LocationID  uint           `json:"locationId"`
	Location    Location       `json:"location" gorm:"foreignKey:LocationID"`
	Bus         *Bus           `json:"bus,omitempty" gorm:"foreignKey:PackageID"`
	Gallery     []GalleryImage `json:"gallery" gorm:"foreignKey:PackageID"`
	Dates       []PackageDate  `json:"dates" gorm:"foreignKey:PackageID"`
	Bookings    []Booking      `json:"bookings" gorm:"foreignKey:PackageID"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidatePrice checks the base price and optional sale price.
func (p *Package) ValidatePrice() error {
	if p.Price <= 0 {
		return fmt.Errorf("invalid Price: %.2f, must be positive", p.Price)
	}
	if p.SalePrice != nil && *p.SalePrice <= 0 {
		return fmt.Errorf("invalid SalePrice: %.2f, must be positive", *p.SalePrice)
	}
	return nil
}

// ValidateCapacity checks MaxPeople for packages whose capacity is
// package-level. Bus tours carry capacity on each date occurrence instead.
func (p *Package) ValidateCapacity() error {
	if !p.ByBus && p.MaxPeople <= 0 {
		return fmt.Errorf("invalid MaxPeople: %d, must be positive", p.MaxPeople)
	}
	return nil
}

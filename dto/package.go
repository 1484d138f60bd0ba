package dto

import (
	"time"

	"geotrip/models"
)

type CreatePackageRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	Duration    string   `json:"duration"`
	MaxPeople   int      `json:"maxPeople"`
	Popular     bool     `json:"popular"`
	ByBus       bool     `json:"byBus"`
	Category    string   `json:"category"`
	LocationID  uint     `json:"locationId"`
}

type UpdatePackageRequest struct {
	ID uint `json:"id" binding:"required"`
	CreatePackageRequest
}

// DateAvailabilityResponse is the per-occurrence seat report shown on bus
// tour pages and the admin dashboard.
type DateAvailabilityResponse struct {
	DateID    uint      `json:"dateId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	MaxPeople int       `json:"maxPeople"`
	Booked    int       `json:"booked"`
	Remaining int       `json:"remaining"`
}

type PackageResponse struct {
	ID          uint                       `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Price       float64                    `json:"price"`
	SalePrice   *float64                   `json:"salePrice,omitempty"`
	Duration    string                     `json:"duration"`
	MaxPeople   int                        `json:"maxPeople"`
	Popular     bool                       `json:"popular"`
	ByBus       bool                       `json:"byBus"`
	Category    string                     `json:"category"`
	Location    models.Location            `json:"location"`
	Gallery     []models.GalleryImage      `json:"gallery"`
	Dates       []models.PackageDate       `json:"dates,omitempty"`
	Booked      int                        `json:"booked"`
	Remaining   int                        `json:"remaining"`
	HasDates    bool                       `json:"hasDates"`
	DatesReport []DateAvailabilityResponse `json:"datesReport,omitempty"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

// PackageDateInput is one occurrence in a replace-all dates payload.
type PackageDateInput struct {
	StartDate string `json:"startDate"` // yyyy-mm-dd
	EndDate   string `json:"endDate"`
	MaxPeople int    `json:"maxPeople"`
}

type ReplacePackageDatesRequest struct {
	Dates []PackageDateInput `json:"dates"`
}

package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
	"geotrip/services"
	"geotrip/validator"
)

// GetPackageDates returns the departure occurrences of one package with
// per-date seat availability, ordered by start date.
func GetPackageDates(c *gin.Context) {
	packageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var pkg models.Package
	if err := config.DB.
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("package_dates.start_date asc")
		}).
		Preload("Bookings").
		First(&pkg, packageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	report := services.DateAvailabilities(pkg.Dates, pkg.Bookings)
	dates := make([]dto.DateAvailabilityResponse, 0, len(report))
	for _, r := range report {
		dates = append(dates, dto.DateAvailabilityResponse{
			DateID:    r.Date.ID,
			StartDate: r.Date.StartDate,
			EndDate:   r.Date.EndDate,
			MaxPeople: r.Date.MaxPeople,
			Booked:    r.Booked,
			Remaining: r.Remaining,
		})
	}

	response.Success(c, dates)
}

// ReplacePackageDates swaps the full date list of a package for the posted
// one (admin). The old occurrences are deleted and the new ones created in
// a single transaction, so the package never shows a partial list.
func ReplacePackageDates(c *gin.Context) {
	packageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var request dto.ReplacePackageDatesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var pkg models.Package
	if err := config.DB.First(&pkg, packageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	dates := make([]models.PackageDate, 0, len(request.Dates))
	for _, input := range request.Dates {
		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date: "+input.StartDate)
			return
		}
		endDate, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date: "+input.EndDate)
			return
		}
		dates = append(dates, models.PackageDate{
			PackageID: pkg.ID,
			StartDate: startDate,
			EndDate:   endDate,
			MaxPeople: input.MaxPeople,
		})
	}

	if err := validator.ValidatePackageDates(dates); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", pkg.ID).Delete(&models.PackageDate{}).Error; err != nil {
			return err
		}
		if len(dates) == 0 {
			return nil
		}
		return tx.Create(&dates).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, dates)
}

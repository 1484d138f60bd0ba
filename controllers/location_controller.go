package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
	"geotrip/validator"
)

// GetLocations lists destinations. Public, used by the catalog filter bar.
func GetLocations(c *gin.Context) {
	var locations []models.Location
	if err := config.DB.Order("name asc").Find(&locations).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, locations)
}

// CreateLocation adds a destination (admin).
func CreateLocation(c *gin.Context) {
	var request dto.LocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	location := models.Location{
		Name:    request.Name,
		Country: request.Country,
	}

	if err := validator.ValidateLocation(&location); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&location).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, location)
}

// UpdateLocation edits a destination (admin).
func UpdateLocation(c *gin.Context) {
	var request dto.LocationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var location models.Location
	if err := config.DB.First(&location, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	location.Name = request.Name
	location.Country = request.Country

	if err := validator.ValidateLocation(&location); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&location).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, location)
}

// DeleteLocation removes a destination (admin). Destinations still carrying
// packages cannot be deleted.
func DeleteLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	var packageCount int64
	if err := config.DB.Model(&models.Package{}).Where("location_id = ?", id).Count(&packageCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if packageCount > 0 {
		response.Conflict(c)
		return
	}

	if err := config.DB.Delete(&models.Location{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

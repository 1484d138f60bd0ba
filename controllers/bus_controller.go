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

// GetBuses lists buses with their seats (admin).
func GetBuses(c *gin.Context) {
	var buses []models.Bus
	query := config.DB.Preload("Seats")

	if packageIDStr := c.Query("packageId"); packageIDStr != "" {
		if packageID, err := strconv.Atoi(packageIDStr); err == nil {
			query = query.Where("package_id = ?", packageID)
		}
	}

	if err := query.Find(&buses).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, buses)
}

// GetBusDetail returns one bus with its seat map. Public, the seat picker
// on bus tour pages uses it.
func GetBusDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bus ID")
		return
	}

	var bus models.Bus
	if err := config.DB.Preload("Seats").First(&bus, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, bus)
}

// CreateBus creates a bus and its seat rows (admin). When the payload
// carries no seat numbers they are generated 1..seatCount.
func CreateBus(c *gin.Context) {
	var request dto.BusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	bus := models.Bus{
		Name:      request.Name,
		SeatCount: request.SeatCount,
		PackageID: request.PackageID,
	}

	if err := validator.ValidateBus(&bus); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	seats := seatNumbers(request)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bus).Error; err != nil {
			return err
		}
		return createSeats(tx, bus.ID, seats)
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Seats").First(&bus, bus.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, bus)
}

// UpdateBus edits a bus (admin). When the payload carries seat numbers the
// old seat rows are replaced with the posted set.
func UpdateBus(c *gin.Context) {
	var request dto.BusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var bus models.Bus
	if err := config.DB.First(&bus, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	bus.Name = request.Name
	bus.SeatCount = request.SeatCount
	bus.PackageID = request.PackageID

	if err := validator.ValidateBus(&bus); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&bus).Error; err != nil {
			return err
		}
		if len(request.Seats) == 0 {
			return nil
		}
		if err := tx.Where("bus_id = ?", bus.ID).Delete(&models.Seat{}).Error; err != nil {
			return err
		}
		return createSeats(tx, bus.ID, request.Seats)
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("Seats").First(&bus, bus.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, bus)
}

// DeleteBus removes a bus and its seats (admin).
func DeleteBus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bus ID")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bus_id = ?", id).Delete(&models.Seat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bus{}, id).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, gin.H{"id": id})
}

func seatNumbers(request dto.BusRequest) []string {
	if len(request.Seats) > 0 {
		return request.Seats
	}
	seats := make([]string, 0, request.SeatCount)
	for i := 1; i <= request.SeatCount; i++ {
		seats = append(seats, strconv.Itoa(i))
	}
	return seats
}

func createSeats(tx *gorm.DB, busID uint, numbers []string) error {
	if len(numbers) == 0 {
		return nil
	}
	seats := make([]models.Seat, 0, len(numbers))
	for _, number := range numbers {
		seats = append(seats, models.Seat{Number: number, BusID: busID})
	}
	return tx.Create(&seats).Error
}

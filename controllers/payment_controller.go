package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/constants"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
)

// GetPayments lists payments for the admin dashboard, filterable by status
// and booking.
func GetPayments(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	query := config.DB.Model(&models.Payment{})

	if status := c.Query("status"); status != "" {
		if !constants.IsValidPaymentStatus(status) {
			response.BadRequest(c, "Invalid payment status: "+status)
			return
		}
		query = query.Where("status = ?", status)
	}
	if bookingIDStr := c.Query("bookingId"); bookingIDStr != "" {
		if bookingID, err := strconv.Atoi(bookingIDStr); err == nil {
			query = query.Where("booking_id = ?", bookingID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	if err := query.Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, payments, page, limit, int(total))
}

// UpdatePaymentStatus moves a payment through its lifecycle (admin). Only
// the known statuses are accepted.
func UpdatePaymentStatus(c *gin.Context) {
	var request dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if !constants.IsValidPaymentStatus(request.Status) {
		response.BadRequest(c, "Invalid payment status: "+request.Status)
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	payment.Status = request.Status
	if err := config.DB.Save(&payment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, payment)
}

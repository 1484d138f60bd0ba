package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
	"geotrip/validator"
)

// GetDiscounts lists discount codes (admin), filterable by name or code.
func GetDiscounts(c *gin.Context) {
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

	query := config.DB.Model(&models.Discount{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			query = query.Where("status = ?", status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var discounts []models.Discount
	if err := query.Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&discounts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, discounts, page, limit, int(total))
}

// CreateDiscount adds a discount code (admin).
func CreateDiscount(c *gin.Context) {
	var request dto.DiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	discount := models.Discount{
		Name:     request.Name,
		Code:     strings.ToUpper(strings.TrimSpace(request.Code)),
		Quantity: request.Quantity,
		FromDate: request.FromDate,
		ToDate:   request.ToDate,
		Discount: request.Discount,
		Status:   request.Status,
	}

	if err := validator.ValidateDiscount(&discount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		response.Conflict(c)
		return
	}

	response.Success(c, discount)
}

// UpdateDiscount edits a discount code (admin).
func UpdateDiscount(c *gin.Context) {
	var request dto.DiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var discount models.Discount
	if err := config.DB.First(&discount, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	discount.Name = request.Name
	discount.Code = strings.ToUpper(strings.TrimSpace(request.Code))
	discount.Quantity = request.Quantity
	discount.FromDate = request.FromDate
	discount.ToDate = request.ToDate
	discount.Discount = request.Discount
	discount.Status = request.Status

	if err := validator.ValidateDiscount(&discount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&discount).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, discount)
}

// DeleteDiscount removes a discount code (admin).
func DeleteDiscount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := config.DB.Delete(&models.Discount{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/constants"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
)

// GetCategories lists tour categories. Public, used by the catalog filter
// bar. The database rows are merged with the predefined category names so
// every known category shows up even before its first package exists.
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		seen[strings.ToLower(category.Name)] = true
	}
	for _, name := range constants.PackageCategories {
		if !seen[strings.ToLower(name)] {
			categories = append(categories, models.Category{Name: name})
		}
	}

	response.Success(c, categories)
}

// CreateCategory adds a category (admin).
func CreateCategory(c *gin.Context) {
	var request dto.CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		response.BadRequest(c, "Category name is required")
		return
	}

	category := models.Category{Name: name}
	if err := config.DB.Create(&category).Error; err != nil {
		response.Conflict(c)
		return
	}

	response.Success(c, category)
}

// UpdateCategory renames a category (admin).
func UpdateCategory(c *gin.Context) {
	var request dto.CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		response.BadRequest(c, "Category name is required")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, request.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	category.Name = name
	if err := config.DB.Save(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, category)
}

// DeleteCategory removes a category (admin).
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := config.DB.Delete(&models.Category{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/models"
	"geotrip/response"
)

type galleryRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

// AddGalleryImages attaches already-uploaded image URLs to a package
// (admin). The binaries go through the upload endpoints first.
func AddGalleryImages(c *gin.Context) {
	packageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var request galleryRequest
	if err := c.ShouldBindJSON(&request); err != nil || len(request.URLs) == 0 {
		response.BadRequest(c, "At least one image URL is required")
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

	images := make([]models.GalleryImage, 0, len(request.URLs))
	for _, url := range request.URLs {
		images = append(images, models.GalleryImage{PackageID: pkg.ID, URL: url})
	}

	if err := config.DB.Create(&images).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, images)
}

// DeleteGalleryImage removes one image row (admin). The Cloudinary asset is
// left in place.
func DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid image ID")
		return
	}

	if err := config.DB.Delete(&models.GalleryImage{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePackageCache()
	response.Success(c, gin.H{"id": id})
}

package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"geotrip/constants"
	"geotrip/controllers"
	middlewares "geotrip/middleware"
	"geotrip/utils"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	bookingController := controllers.NewBookingController(db, redisCli, m)

	v1 := router.Group("/api/v1")

	// Public catalog
	v1.GET("/packages", controllers.GetPackages)
	v1.GET("/packages/:id", controllers.GetPackageDetail)
	v1.GET("/packages/:id/dates", controllers.GetPackageDates)
	v1.GET("/locations", controllers.GetLocations)
	v1.GET("/categories", controllers.GetCategories)
	v1.GET("/buses/:id", controllers.GetBusDetail)

	// Public booking form
	v1.POST("/bookings", middlewares.SessionMiddleware(), bookingController.CreateBooking)
	v1.POST("/bookings/quote", middlewares.SessionMiddleware(), bookingController.Quote)

	// Back-office auth
	v1.POST("/auth/login", controllers.Login)

	// Admin: catalog management
	v1.POST("/packages", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.CreatePackage)
	v1.PUT("/packages", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdatePackage)
	v1.DELETE("/packages/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeletePackage)
	v1.POST("/packages/:id/dates", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.ReplacePackageDates)
	v1.POST("/packages/:id/gallery", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.AddGalleryImages)
	v1.DELETE("/gallery/:id", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.DeleteGalleryImage)

	// Admin: bookings and payments
	v1.GET("/bookings", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), bookingController.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), bookingController.GetBookingDetail)
	v1.PUT("/bookings", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), bookingController.UpdateBooking)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.DeleteBooking)
	v1.GET("/payments", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.GetPayments)
	v1.PUT("/paymentStatus", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdatePaymentStatus)

	// Admin: supporting resources
	v1.POST("/locations", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.CreateLocation)
	v1.PUT("/locations", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdateLocation)
	v1.DELETE("/locations/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteLocation)
	v1.POST("/categories", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.CreateCategory)
	v1.PUT("/categories", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdateCategory)
	v1.DELETE("/categories/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteCategory)
	v1.GET("/buses", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.GetBuses)
	v1.POST("/buses", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.CreateBus)
	v1.PUT("/buses", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdateBus)
	v1.DELETE("/buses/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteBus)
	v1.GET("/discounts", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.GetDiscounts)
	v1.POST("/discounts", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.CreateDiscount)
	v1.PUT("/discounts", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), controllers.UpdateDiscount)
	v1.DELETE("/discounts/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteDiscount)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "packages"})
			if err != nil {
				utils.LogError("Cloudinary upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		utils.LogInfo("uploaded %d gallery images", len(urls))
		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "packages"})
		if err != nil {
			utils.LogError("Cloudinary upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte(`{"event":"test","data":"broadcast check"}`)
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}

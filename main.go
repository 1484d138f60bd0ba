package main

import (
	"log"
	"net/http"
	"os"

	"geotrip/config"
	"geotrip/jobs"
	"geotrip/models"
	"geotrip/routes"
	"geotrip/services"
	"geotrip/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Location{},
		&models.Category{},
		&models.Package{},
		&models.PackageDate{},
		&models.GalleryImage{},
		&models.Bus{},
		&models.Seat{},
		&models.Discount{},
		&models.Booking{},
		&models.Payment{},
		&models.User{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	discountService := services.NewDiscountService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
	jobs.SetDiscountExpirer(discountService)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	"hotelpms/config"
	"hotelpms/controllers"
	"hotelpms/jobs"
	"hotelpms/models"
	"hotelpms/routes"
	"hotelpms/services"
	"hotelpms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Staff{},
		&models.RoomType{},
		&models.Booking{},
		&models.PricingPlan{},
		&models.RatePlan{},
		&models.Service{},
		&models.BlogPost{},
		&models.StaffReport{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	availabilitySvc := services.NewAvailabilityService(services.AvailabilityServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: appLogger,
	})
	controllers.SetAvailabilityService(availabilitySvc)

	watcher := services.StartAvailabilityWatcher(services.Changes, availabilitySvc, m, appLogger)
	defer watcher.Stop()

	bookingSvc := services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	jobs.SetOverdueCheckout(bookingSvc)

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

package routes

import (
	"context"
	"net/http"

	"hotelpms/config"
	"hotelpms/controllers"
	middlewares "hotelpms/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/availability", middlewares.AuthMiddleware(), controllers.GetAvailability)

	v1.GET("/roomTypes", middlewares.AuthMiddleware(), controllers.GetRoomTypes)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(1, 2), controllers.CreateRoomType)
	v1.GET("/roomTypes/:id", middlewares.AuthMiddleware(), controllers.GetRoomTypeDetail)
	v1.PUT("/roomTypeUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoomType)
	v1.PUT("/roomTypeStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRoomTypeStatus)

	v1.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(), controllers.ChangeBookingStatus)
	v1.PUT("/bookingExtend", middlewares.AuthMiddleware(), controllers.ExtendBooking)

	v1.GET("/pricingPlans", middlewares.AuthMiddleware(), controllers.GetPricingPlans)
	v1.POST("/pricingPlans", middlewares.AuthMiddleware(1, 2), controllers.CreatePricingPlan)
	v1.GET("/pricingPlans/:id", middlewares.AuthMiddleware(), controllers.GetPricingPlanDetail)
	v1.PUT("/pricingPlanUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdatePricingPlan)
	v1.PUT("/pricingPlanStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangePricingPlanStatus)

	v1.GET("/ratePlans", middlewares.AuthMiddleware(), controllers.GetRatePlans)
	v1.POST("/ratePlans", middlewares.AuthMiddleware(1, 2), controllers.CreateRatePlan)
	v1.GET("/ratePlans/:id", middlewares.AuthMiddleware(), controllers.GetRatePlanDetail)
	v1.PUT("/ratePlanUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRatePlan)
	v1.PUT("/ratePlanStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRatePlanStatus)

	v1.GET("/services", controllers.GetServices)
	v1.POST("/services", middlewares.AuthMiddleware(1, 2), controllers.CreateService)
	v1.GET("/services/:id", controllers.GetServiceDetail)
	v1.PUT("/serviceUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateService)
	v1.PUT("/serviceStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeServiceStatus)

	v1.GET("/blog", middlewares.OptionalAuthMiddleware(), controllers.GetBlogPosts)
	v1.GET("/blog/:slug", middlewares.OptionalAuthMiddleware(), controllers.GetBlogPostBySlug)
	v1.POST("/blog", middlewares.AuthMiddleware(1, 2), controllers.CreateBlogPost)
	v1.PUT("/blogUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateBlogPost)
	v1.PUT("/blogPublish", middlewares.AuthMiddleware(1, 2), controllers.PublishBlogPost)
	v1.DELETE("/blog/:id", middlewares.AuthMiddleware(1), controllers.DeleteBlogPost)

	v1.GET("/reports/staff", middlewares.AuthMiddleware(1, 2), controllers.GetStaffReports)
	v1.GET("/reports/staff/export", middlewares.AuthMiddleware(1, 2), controllers.ExportStaffReports)

	v1.GET("/staffs", middlewares.AuthMiddleware(1, 2), controllers.GetStaffs)
	v1.POST("/staffs", middlewares.AuthMiddleware(1, 2), controllers.CreateStaff)
	v1.PUT("/staffs", middlewares.AuthMiddleware(1, 2), controllers.UpdateStaff)
	v1.PUT("/staffStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeStaffStatus)

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
				return
			}

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			src.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"urls":    urls,
		})
	})
}

package controllers

import (
	stderrors "errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"hotelpms/config"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetServices lists hotel services with an optional name filter.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		response.DataFetchError(c, "failed to load services")
		return
	}

	if nameFilter := c.Query("name"); nameFilter != "" {
		decoded, _ := url.QueryUnescape(nameFilter)
		filtered := services[:0]
		for _, s := range services {
			if strings.Contains(strings.ToLower(s.Name), strings.ToLower(decoded)) {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].Name < services[j].Name
	})

	response.Success(c, services)
}

// CreateService adds a bookable hotel amenity.
func CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		IsAvailable: true,
	}
	if err := config.DB.Create(&service).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, service)
}

// GetServiceDetail returns one service.
func GetServiceDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service id")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load service")
		return
	}

	response.Success(c, service)
}

// UpdateService edits a hotel amenity.
func UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Service id is required")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load service")
		return
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Price >= 0 {
		service.Price = req.Price
	}
	if req.Image != "" {
		service.Image = req.Image
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, service)
}

// ChangeServiceStatus toggles a service available or unavailable.
func ChangeServiceStatus(c *gin.Context) {
	var req struct {
		ID          uint `json:"id" binding:"required"`
		IsAvailable bool `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load service")
		return
	}

	if err := config.DB.Model(&service).Update("is_available", req.IsAvailable).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	service.IsAvailable = req.IsAvailable
	response.Success(c, service)
}

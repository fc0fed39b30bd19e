package controllers

import (
	stderrors "errors"
	"sort"
	"strconv"

	"hotelpms/config"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPricingPlans lists pricing plans, optionally scoped to one room type.
func GetPricingPlans(c *gin.Context) {
	tx := config.DB.Preload("RoomType")
	if roomTypeStr := c.Query("roomTypeId"); roomTypeStr != "" {
		id, err := strconv.Atoi(roomTypeStr)
		if err != nil {
			response.BadRequest(c, "Invalid room type id")
			return
		}
		tx = tx.Where("room_type_id = ?", id)
	}

	var plans []models.PricingPlan
	if err := tx.Find(&plans).Error; err != nil {
		response.DataFetchError(c, "failed to load pricing plans")
		return
	}

	sort.Slice(plans, func(i, j int) bool {
		if plans[i].FromDate != plans[j].FromDate {
			return plans[i].FromDate < plans[j].FromDate
		}
		return plans[i].Name < plans[j].Name
	})

	response.Success(c, plans)
}

// CreatePricingPlan adds a seasonal price adjustment for one room type.
func CreatePricingPlan(c *gin.Context) {
	var req dto.PricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.BadRequest(c, "Room type not found")
		return
	}

	plan := models.PricingPlan{
		RoomTypeID: req.RoomTypeID,
		Name:       req.Name,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Adjustment: req.Adjustment,
		IsActive:   true,
	}
	if err := validator.ValidatePricingPlan(&plan); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, plan)
}

// GetPricingPlanDetail returns one pricing plan.
func GetPricingPlanDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid pricing plan id")
		return
	}

	var plan models.PricingPlan
	if err := config.DB.Preload("RoomType").First(&plan, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load pricing plan")
		return
	}

	response.Success(c, plan)
}

// UpdatePricingPlan edits a pricing plan.
func UpdatePricingPlan(c *gin.Context) {
	var req dto.PricingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Pricing plan id is required")
		return
	}

	var plan models.PricingPlan
	if err := config.DB.First(&plan, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load pricing plan")
		return
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.FromDate != "" {
		plan.FromDate = req.FromDate
	}
	if req.ToDate != "" {
		plan.ToDate = req.ToDate
	}
	plan.Adjustment = req.Adjustment
	if err := validator.ValidatePricingPlan(&plan); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, plan)
}

// ChangePricingPlanStatus toggles a pricing plan active or inactive.
func ChangePricingPlanStatus(c *gin.Context) {
	var req struct {
		ID       uint `json:"id" binding:"required"`
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var plan models.PricingPlan
	if err := config.DB.First(&plan, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load pricing plan")
		return
	}

	if err := config.DB.Model(&plan).Update("is_active", req.IsActive).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	plan.IsActive = req.IsActive
	response.Success(c, plan)
}

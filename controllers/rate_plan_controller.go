package controllers

import (
	stderrors "errors"
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

// GetRatePlans lists rate plans, optionally filtered by code.
func GetRatePlans(c *gin.Context) {
	var plans []models.RatePlan
	if err := config.DB.Find(&plans).Error; err != nil {
		response.DataFetchError(c, "failed to load rate plans")
		return
	}

	if codeFilter := c.Query("code"); codeFilter != "" {
		filtered := plans[:0]
		for _, p := range plans {
			if strings.EqualFold(p.Code, codeFilter) {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Code < plans[j].Code
	})

	response.Success(c, plans)
}

// CreateRatePlan adds a named percentage rate applied at booking time.
func CreateRatePlan(c *gin.Context) {
	var req dto.RatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	plan := models.RatePlan{
		Name:     req.Name,
		Code:     strings.ToUpper(req.Code),
		Percent:  req.Percent,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		Quantity: req.Quantity,
		IsActive: true,
	}
	if err := validator.ValidateRatePlan(&plan); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var existing models.RatePlan
	if err := config.DB.Where("code = ?", plan.Code).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, plan)
}

// GetRatePlanDetail returns one rate plan.
func GetRatePlanDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid rate plan id")
		return
	}

	var plan models.RatePlan
	if err := config.DB.First(&plan, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load rate plan")
		return
	}

	response.Success(c, plan)
}

// UpdateRatePlan edits a rate plan. The code never changes once issued.
func UpdateRatePlan(c *gin.Context) {
	var req dto.RatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Rate plan id is required")
		return
	}

	var plan models.RatePlan
	if err := config.DB.First(&plan, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load rate plan")
		return
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	plan.Percent = req.Percent
	if req.FromDate != "" {
		plan.FromDate = req.FromDate
	}
	if req.ToDate != "" {
		plan.ToDate = req.ToDate
	}
	plan.Quantity = req.Quantity
	if err := validator.ValidateRatePlan(&plan); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, plan)
}

// ChangeRatePlanStatus toggles a rate plan active or inactive.
func ChangeRatePlanStatus(c *gin.Context) {
	var req struct {
		ID       uint `json:"id" binding:"required"`
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var plan models.RatePlan
	if err := config.DB.First(&plan, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load rate plan")
		return
	}

	if err := config.DB.Model(&plan).Update("is_active", req.IsActive).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	plan.IsActive = req.IsActive
	response.Success(c, plan)
}

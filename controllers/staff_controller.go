package controllers

import (
	stderrors "errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"hotelpms/config"
	"hotelpms/constants"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/services"
	"hotelpms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStaffs lists staff accounts with optional name, role and status filters.
func GetStaffs(c *gin.Context) {
	var allStaffs []models.Staff
	if err := config.DB.Find(&allStaffs).Error; err != nil {
		response.DataFetchError(c, "failed to load staff accounts")
		return
	}

	nameFilter := c.Query("name")
	roleStr := c.Query("role")
	statusStr := c.Query("status")

	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	filtered := make([]models.Staff, 0, len(allStaffs))
	for _, s := range allStaffs {
		if nameFilter != "" {
			decoded, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(decoded)) {
				continue
			}
		}
		if roleStr != "" {
			role, err := strconv.Atoi(roleStr)
			if err == nil && s.Role != role {
				continue
			}
		}
		if statusStr != "" {
			status, err := strconv.Atoi(statusStr)
			if err == nil && s.Status != status {
				continue
			}
		}
		filtered = append(filtered, s)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	responses := make([]dto.StaffResponse, 0, end-start)
	for _, s := range filtered[start:end] {
		responses = append(responses, convertToStaffResponse(s))
	}

	response.SuccessWithPagination(c, responses, page, limit, total)
}

// CreateStaff registers a new staff account.
func CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	staff := models.Staff{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      constants.StaffStatusActive,
	}
	if staff.Role == 0 {
		staff.Role = constants.RoleStaff
	}
	if err := validator.ValidateStaff(&staff); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var existing models.Staff
	if err := config.DB.Where("email = ?", staff.Email).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	hashed, err := services.HashPassword(staff.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	staff.Password = hashed

	if err := config.DB.Create(&staff).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, convertToStaffResponse(staff))
}

// UpdateStaff edits a staff account. Only super-admins may change roles.
func UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load staff account")
		return
	}

	if req.Name != "" {
		staff.Name = req.Name
	}
	if req.PhoneNumber != "" {
		staff.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		staff.Avatar = req.Avatar
	}
	if req.Role != 0 && req.Role != staff.Role {
		callerRole, _ := c.Get("staffRole")
		if callerRole != constants.RoleSuperAdmin {
			response.Forbidden(c)
			return
		}
		staff.Role = req.Role
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, convertToStaffResponse(staff))
}

// ChangeStaffStatus activates or deactivates a staff account.
func ChangeStaffStatus(c *gin.Context) {
	var req struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Status != constants.StaffStatusActive && req.Status != constants.StaffStatusInactive {
		response.ValidationError(c, "Staff status is not valid")
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load staff account")
		return
	}

	if err := config.DB.Model(&staff).Update("status", req.Status).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	staff.Status = req.Status
	response.Success(c, convertToStaffResponse(staff))
}

package controllers

import (
	stderrors "errors"
	"os"
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

func convertToStaffResponse(staff models.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Email:       staff.Email,
		PhoneNumber: staff.PhoneNumber,
		Avatar:      staff.Avatar,
		Role:        staff.Role,
		Status:      staff.Status,
	}
}

// superAdminAllowlist reads the comma-separated list of emails that are
// always granted super-admin, from SUPER_ADMIN_EMAILS.
func superAdminAllowlist() []string {
	raw := os.Getenv("SUPER_ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

func newRoleResolution() *services.RoleResolution {
	return services.NewRoleResolution(
		services.GormStaffLookup(config.DB),
		superAdminAllowlist(),
		constants.RoleSuperAdmin,
	)
}

// Login authenticates a staff member by email and password.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	var staff models.Staff
	if err := config.DB.Where("email = ?", req.Email).First(&staff).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "Invalid email or password")
			return
		}
		response.DataFetchError(c, "failed to load staff account")
		return
	}

	if staff.Status != constants.StaffStatusActive {
		response.Forbidden(c)
		return
	}

	if err := services.CheckPassword(staff.Password, req.Password); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	token, err := services.GenerateToken(staff)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		Staff: convertToStaffResponse(staff),
	})
}

// AuthGoogle signs a staff member in with a Google ID token. The role comes
// out of the resolver chain; an unknown email that is not allowlisted is
// rejected rather than silently registered.
func AuthGoogle(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	email, name, picture, err := services.VerifyGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	role, err := newRoleResolution().ResolveRole(services.Identity{Email: email})
	if err != nil {
		response.Forbidden(c)
		return
	}

	var staff models.Staff
	err = config.DB.Where("email = ?", email).First(&staff).Error
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		staff = models.Staff{
			Name:   name,
			Email:  email,
			Avatar: picture,
			Role:   role,
			Status: constants.StaffStatusActive,
		}
		if err := config.DB.Create(&staff).Error; err != nil {
			response.MutationError(c, "")
			return
		}
	case err != nil:
		response.DataFetchError(c, "failed to load staff account")
		return
	default:
		if staff.Status != constants.StaffStatusActive {
			response.Forbidden(c)
			return
		}
		staff.Role = role
	}

	token, err := services.GenerateToken(staff)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		Staff: convertToStaffResponse(staff),
	})
}

// Logout denylists the presented token until it expires.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if err := services.RevokeToken(tokenString); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetProfile returns the authenticated staff member's own account.
func GetProfile(c *gin.Context) {
	staffID, ok := c.Get("staffID")
	if !ok {
		response.Unauthorized(c)
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, staffID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load staff account")
		return
	}

	response.Success(c, convertToStaffResponse(staff))
}

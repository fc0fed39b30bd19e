package middleware

import (
	"strings"

	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request and, when roles are given,
// requires one of them.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if services.IsTokenRevoked(tokenString) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		staffID, staffRole, err := services.GetStaffIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == staffRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", staffRole)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the staff identity when a valid token is
// presented but lets anonymous requests through. Handlers serving mixed
// public/staff content branch on the presence of staffID.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if services.IsTokenRevoked(tokenString) {
			c.Next()
			return
		}

		staffID, staffRole, err := services.GetStaffIDFromToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("staffID", staffID)
		c.Set("staffRole", staffRole)
		c.Next()
	}
}

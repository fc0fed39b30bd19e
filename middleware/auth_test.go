package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelpms/constants"
	"hotelpms/models"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedIdentity struct {
	staffID  uint
	role     int
	present  bool
	reached  bool
	httpCode int
}

func runWithMiddleware(t *testing.T, mw gin.HandlerFunc, authHeader string) capturedIdentity {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got capturedIdentity
	router := gin.New()
	router.GET("/posts", mw, func(c *gin.Context) {
		got.reached = true
		if id, ok := c.Get("staffID"); ok {
			got.present = true
			got.staffID = id.(uint)
			role, _ := c.Get("staffRole")
			got.role = role.(int)
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	got.httpCode = w.Code
	return got
}

func staffToken(t *testing.T, id uint, role int) string {
	t.Helper()
	token, err := services.GenerateToken(models.Staff{ID: id, Role: role})
	require.NoError(t, err)
	return token
}

func TestOptionalAuthAttachesIdentity(t *testing.T) {
	token := staffToken(t, 7, constants.RoleAdmin)

	got := runWithMiddleware(t, OptionalAuthMiddleware(), "Bearer "+token)
	assert.True(t, got.reached)
	assert.True(t, got.present)
	assert.Equal(t, uint(7), got.staffID)
	assert.Equal(t, constants.RoleAdmin, got.role)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	got := runWithMiddleware(t, OptionalAuthMiddleware(), "")
	assert.True(t, got.reached)
	assert.False(t, got.present)
	assert.Equal(t, http.StatusOK, got.httpCode)
}

func TestOptionalAuthIgnoresGarbageToken(t *testing.T) {
	got := runWithMiddleware(t, OptionalAuthMiddleware(), "Bearer not.a.token")
	assert.True(t, got.reached)
	assert.False(t, got.present)
	assert.Equal(t, http.StatusOK, got.httpCode)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	got := runWithMiddleware(t, AuthMiddleware(), "")
	assert.False(t, got.reached)
	assert.Equal(t, http.StatusUnauthorized, got.httpCode)
}

func TestAuthMiddlewareEnforcesRoles(t *testing.T) {
	token := staffToken(t, 7, constants.RoleStaff)

	got := runWithMiddleware(t, AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), "Bearer "+token)
	assert.False(t, got.reached)
	assert.Equal(t, http.StatusForbidden, got.httpCode)

	got = runWithMiddleware(t, AuthMiddleware(constants.RoleStaff), "Bearer "+token)
	assert.True(t, got.reached)
	assert.Equal(t, uint(7), got.staffID)
}

package controllers

import (
	"net/http/httptest"
	"testing"

	"hotelpms/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCanViewBlogPost(t *testing.T) {
	draft := models.BlogPost{Title: "Upcoming offers", Published: false}
	published := models.BlogPost{Title: "Summer offers", Published: true}

	// Drafts are staff-only.
	assert.False(t, canViewBlogPost(draft, false))
	assert.True(t, canViewBlogPost(draft, true))

	// Published posts are public.
	assert.True(t, canViewBlogPost(published, false))
	assert.True(t, canViewBlogPost(published, true))
}

func TestIsStaffRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, isStaffRequest(c))

	c.Set("staffID", uint(7))
	assert.True(t, isStaffRequest(c))
}

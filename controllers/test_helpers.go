package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/content"
	"github.com/FaithPortal/models"
	"github.com/FaithPortal/store"
)

// SetupTestStore installs an in-memory store as the content service for the
// duration of a test and returns it for seeding and failure injection.
func SetupTestStore(t *testing.T) (*store.Memory, func()) {
	t.Helper()

	mem := store.NewMemory()
	original := contentService
	contentService = content.NewService(mem)

	cleanup := func() {
		contentService = original
	}
	return mem, cleanup
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// SetAuthenticatedUser sets the currentUser and admin values in the Gin
// context, simulating what the CheckAuth middleware does.
func SetAuthenticatedUser(c *gin.Context, user models.User, isAdmin bool) {
	c.Set("currentUser", user)
	c.Set("admin", isAdmin)
}

package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckAdmin runs after CheckAuth and gates the content-management routes.
func CheckAdmin(c *gin.Context) {
	isAdmin := c.MustGet("admin").(bool)

	if !isAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
}

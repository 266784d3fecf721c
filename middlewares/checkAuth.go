package middlewares

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/FaithPortal/models"
)

// TokenVerifier abstracts the auth provider's ID-token check so tests can
// substitute a stub. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

var verifier TokenVerifier

// SetTokenVerifier installs the verifier used by CheckAuth. Called once at
// startup and swapped by middleware tests.
func SetTokenVerifier(v TokenVerifier) {
	verifier = v
}

func CheckAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		return
	}

	authToken := strings.Split(authHeader, " ")
	if len(authToken) != 2 || authToken[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
		return
	}

	if verifier == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication service unavailable"})
		return
	}

	token, err := verifier.VerifyIDToken(c.Request.Context(), authToken[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user := models.User{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		user.Name = name
	}
	user.Admin = token.Claims["admin"] == true

	c.Set("currentUser", user)
	c.Set("admin", user.Admin)

	c.Next()
}

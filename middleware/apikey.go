package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAnonKey checks the public anon key the storefront sends on
// checkout calls in the apikey header.
func RequireAnonKey(anonKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if anonKey == "" || c.GetHeader("apikey") != anonKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminKey guards the back-office routes with the private admin key
// in the X-API-KEY header.
func RequireAdminKey(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-API-KEY") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireServiceToken guards server-to-server routes with a static bearer
// credential.
func RequireServiceToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if token == "" || !strings.HasPrefix(authz, "Bearer ") || strings.TrimPrefix(authz, "Bearer ") != token {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing service credential"})
			c.Abort()
			return
		}
		c.Next()
	}
}

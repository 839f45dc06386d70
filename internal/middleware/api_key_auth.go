package middleware

import (
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// APIKeyAuth authenticates machine callers sending x-api-key. The key is
// checked against a bcrypt hash and maps to a single configured owner.
// Requests without a valid key fall through to the JWT middleware.
func APIKeyAuth(keyHash, ownerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" || isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := c.GetHeader("x-api-key")
		if key == "" {
			c.Next() // No api key provided, let it continue
			return
		}

		if !utils.CheckAPIKeyHash(key, keyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Invalid API key presented")
			c.Next()
			return
		}

		setOwner(c, ownerID, "api_key")
		c.Next()
	}
}

// isPublicRoute checks if the given path is a public route that doesn't require authentication
func isPublicRoute(path string) bool {
	switch path {
	case "/health", "/api/v1/health":
		return true
	}
	return false
}

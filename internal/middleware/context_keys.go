package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ownerIDKey is the key used to store the authenticated owner's ID.
const ownerIDKey = contextKey("ownerID")

// authMethodKey records which middleware authenticated the request.
const authMethodKey = "authMethod"

// setOwner stores the owner id in the request context and enriches the logger.
func setOwner(c *gin.Context, ownerID, method string) {
	ctx := context.WithValue(c.Request.Context(), ownerIDKey, ownerID)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With("owner_id", ownerID, "auth_method", method))
	c.Request = c.Request.WithContext(ctx)
	c.Set(authMethodKey, method)
}

// GetOwnerIDFromContext retrieves the authenticated owner ID from the Gin context.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	ownerID, ok := c.Request.Context().Value(ownerIDKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}

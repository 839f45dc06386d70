package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a logged 500 with the standard response envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Panic recovered",
			slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("internal server error"))
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var (
		unbalanced *apperrors.UnbalancedTransactionError
		payroll    *apperrors.InvalidPayrollInputError
		unmapped   *apperrors.UnmappedAdjustmentTypeError
		transition *apperrors.InvalidStateTransitionError
	)
	switch {
	case errors.As(err, &unbalanced), errors.As(err, &payroll), errors.As(err, &unmapped):
		return http.StatusUnprocessableEntity
	case errors.As(err, &transition):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the failure envelope. Internal errors are logged
// and replaced by fallback so infrastructure details do not leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, dto.Fail(fallback))
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, dto.Fail(err.Error()))
}

// ownerOrAbort returns the authenticated owner id or writes a 401.
func ownerOrAbort(c *gin.Context, logger *slog.Logger) (string, bool) {
	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return "", false
	}
	return ownerID, true
}

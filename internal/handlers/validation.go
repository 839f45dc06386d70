package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("Gin validator engine is not go-playground/validator, custom tags disabled")
			return
		}
		if err := v.RegisterValidation("accountcode", validateAccountCode); err != nil {
			slog.Error("Failed to register accountcode validator", slog.String("error", err.Error()))
		}
	})
}

// validateAccountCode accepts 4-digit BAS account codes.
func validateAccountCode(fl validator.FieldLevel) bool {
	_, err := accounts.Normalize(fl.Field().String())
	return err == nil
}

package main

import (
	"os"

	"github.com/SscSPs/bokforing_app/internal/commands"
)

// @title Bokföring API
// @version 1.0
// @description Double-entry bookkeeping, document postings and payroll for Swedish small businesses.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

// @security BearerAuth
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

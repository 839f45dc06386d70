package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	UseMemoryStore bool // Serve from the in-memory store instead of PostgreSQL

	JWTSecret string
	JWTIssuer string

	// Machine callers authenticate with x-api-key
	APIKeyHash    string
	APIKeyOwnerID string

	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	ShutdownTimeout    time.Duration

	CompanyBankAccount string
	DefaultTaxTable    int
	DefaultTaxColumn   int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("USE_MEMORY_STORE", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "bokforing-app")
	v.SetDefault("API_KEY_HASH", "")
	v.SetDefault("API_KEY_OWNER_ID", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("COMPANY_BANK_ACCOUNT", "1930")
	v.SetDefault("DEFAULT_TAX_TABLE", 32)
	v.SetDefault("DEFAULT_TAX_COLUMN", 1)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		UseMemoryStore:     v.GetBool("USE_MEMORY_STORE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		APIKeyHash:         v.GetString("API_KEY_HASH"),
		APIKeyOwnerID:      v.GetString("API_KEY_OWNER_ID"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		CompanyBankAccount: v.GetString("COMPANY_BANK_ACCOUNT"),
		DefaultTaxTable:    v.GetInt("DEFAULT_TAX_TABLE"),
		DefaultTaxColumn:   v.GetInt("DEFAULT_TAX_COLUMN"),
	}

	if cfg.DatabaseURL == "" && !cfg.UseMemoryStore {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be changed in production")
	}

	if cfg.APIKeyHash != "" && cfg.APIKeyOwnerID == "" {
		return nil, fmt.Errorf("API_KEY_OWNER_ID is required when API_KEY_HASH is set")
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	if cfg.DefaultTaxTable < 29 || cfg.DefaultTaxTable > 42 {
		return nil, fmt.Errorf("DEFAULT_TAX_TABLE must be between 29 and 42, got %d", cfg.DefaultTaxTable)
	}
	if cfg.DefaultTaxColumn < 1 || cfg.DefaultTaxColumn > 6 {
		return nil, fmt.Errorf("DEFAULT_TAX_COLUMN must be between 1 and 6, got %d", cfg.DefaultTaxColumn)
	}
	if len(cfg.CompanyBankAccount) != 4 || !strings.HasPrefix(cfg.CompanyBankAccount, "19") {
		return nil, fmt.Errorf("COMPANY_BANK_ACCOUNT must be a 19xx account, got %q", cfg.CompanyBankAccount)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

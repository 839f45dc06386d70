package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/core/services"
	"github.com/SscSPs/bokforing_app/internal/handlers"
	"github.com/SscSPs/bokforing_app/internal/middleware"
	"github.com/SscSPs/bokforing_app/internal/platform/config"
	"github.com/SscSPs/bokforing_app/internal/repositories/database/memory"
	"github.com/SscSPs/bokforing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bokforing_app/internal/utils"
	"github.com/SscSPs/bokforing_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a.logger, cfg, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")

	return cmd
}

func runServer(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipMigrations bool) error {
	repos, closeRepos, err := openRepositories(ctx, logger, cfg, skipMigrations)
	if err != nil {
		return err
	}
	defer closeRepos()

	container, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		return err
	}

	posthog := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthog.Close()

	r, err := newRouter(logger, cfg, container, posthog)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// openRepositories picks the storage backend. The returned func releases it.
func openRepositories(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipMigrations bool) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.UseMemoryStore {
		logger.Warn("Using the in-memory store; data is lost on restart")
		return memory.NewStore(accounts.DefaultChart()).RepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if !skipMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.Up); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func newRouter(logger *slog.Logger, cfg *config.Config, container *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.Recovery(), cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, posthog, rateLimiter)
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "x-api-key", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}
}

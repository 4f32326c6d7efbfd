package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/docorbit_backend/internal/adapters/email"
	portssvc "github.com/SscSPs/docorbit_backend/internal/core/ports/services"
	"github.com/SscSPs/docorbit_backend/internal/core/services"
	"github.com/SscSPs/docorbit_backend/internal/dto"
	"github.com/SscSPs/docorbit_backend/internal/handlers"
	"github.com/SscSPs/docorbit_backend/internal/middleware"
	"github.com/SscSPs/docorbit_backend/internal/platform/config"
	"github.com/SscSPs/docorbit_backend/internal/repositories/cache/redisstore"
	"github.com/SscSPs/docorbit_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/docorbit_backend/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

// @title DocOrbit Backend API
// @version 1.0
// @description Clinic appointment booking backend: accounts, doctor directory, appointments and password reset.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	// OTP records and verification grants move to Redis when it is configured.
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		repos.OTPRepo = redisstore.NewOTPRepository(redisClient, "")
		logger.Info("OTP store backed by redis.")
	}

	mailer := newMailer(cfg, logger)

	serviceContainer, err := services.NewServiceContainer(cfg, repos, mailer)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigin))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	if err := serviceContainer.Notification.Wait(shutdownCtx); err != nil {
		logger.Warn("Pending notifications abandoned", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// newMailer picks SMTP delivery when a relay is configured, log-only otherwise.
func newMailer(cfg *config.Config, logger *slog.Logger) portssvc.Mailer {
	if cfg.SMTPHost == "" {
		return email.NewLogMailer(logger)
	}
	logger.Info("Mail delivery via SMTP", slog.String("host", cfg.SMTPHost), slog.Int("port", cfg.SMTPPort))
	return email.NewSMTPMailer(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/cheque_amount_app/internal/core/services"
	"github.com/SscSPs/cheque_amount_app/internal/handlers"
	"github.com/SscSPs/cheque_amount_app/internal/middleware"
	"github.com/SscSPs/cheque_amount_app/internal/platform/config"
	"github.com/SscSPs/cheque_amount_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title Cheque Amount API
// @version 1.0
// @description Converts arabic-numeral amounts into the traditional Chinese legal-amount text used on bank cheques.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg)
	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter, posthogClient)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		posthogClient.Close()
		os.Exit(1)
	}
}

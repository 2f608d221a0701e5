package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/api"
	sessionapi "github.com/bizlens/analysis-backend/internal/api/session"
	"github.com/bizlens/analysis-backend/internal/config"
	"github.com/bizlens/analysis-backend/internal/integration/llm"
	"github.com/bizlens/analysis-backend/internal/pkg/validator"
	"github.com/bizlens/analysis-backend/internal/repository"
	"github.com/bizlens/analysis-backend/internal/usecase/session"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize in-memory stores
	sessionRepo := repository.NewSessionMemory(cfg.SessionTTL, cfg.SessionCleanupInterval)
	questionCache := repository.NewQuestionMemoryCache()
	logger.Info("In-memory stores initialized",
		zap.Duration("session_ttl", cfg.SessionTTL),
	)

	// Initialize text-generation connector
	llmConnector, err := llm.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM connector: %w", err)
	}
	logger.Info("LLM connector initialized", zap.String("provider", cfg.LLMCfg.Provider))

	// Initialize validators
	requestValidator := validator.NewValidator()

	// Initialize use cases
	sessionUC := session.NewUsecase(
		sessionRepo,
		questionCache,
		llmConnector,
		cfg.FallbackQuestions,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	sessionHandler := sessionapi.NewHandler(sessionUC, requestValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(sessionHandler, cfg.CORSAllowedOrigins, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

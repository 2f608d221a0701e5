package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/config"
	"github.com/bizlens/analysis-backend/internal/entity"
)

// Connector is the text-generation surface the rest of the application
// sees. All three operations block until the model replies.
type Connector interface {
	GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error)
	GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error)
	GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error)
}

// NewFromConfig builds the connector selected by LLM_PROVIDER.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Connector, error) {
	switch strings.ToLower(cfg.LLMCfg.Provider) {
	case "gemini":
		return NewGeminiConnector(ctx, cfg.GeminiAPIKey, cfg.LLMCfg.GeminiModel, cfg.LLMCfg.Retry, logger)
	case "http":
		return NewHTTPConnector(cfg.LLMCfg, logger), nil
	case "mock":
		return NewMockConnector(logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMCfg.Provider)
	}
}

package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/config"
	"github.com/bizlens/analysis-backend/internal/entity"
	pkghttp "github.com/bizlens/analysis-backend/pkg/http"
)

// HTTPConnector talks to a JSON-over-HTTP text-generation service, for
// deployments that front the model with their own gateway instead of
// calling Gemini directly.
type HTTPConnector struct {
	config    config.LLMConfig
	connector *pkghttp.Connector
	retryOpts []retry.Option
	logger    *zap.Logger
}

func NewHTTPConnector(cfg config.LLMConfig, logger *zap.Logger) *HTTPConnector {
	clientCfg := cfg.HTTPClientConfig

	connector := pkghttp.NewConnector(
		&pkghttp.ConnectorConfig{
			BaseURL: clientCfg.Url,
			Logger:  logger,
		},
		pkghttp.WithRequestTimeout(clientCfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(clientCfg.ConnTimeout),
		pkghttp.WithClientKeepAlive(clientCfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(clientCfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(clientCfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
		pkghttp.WithAuthToken(clientCfg.Token),
	)

	return &HTTPConnector{
		config:    cfg,
		connector: connector,
		retryOpts: cfg.Retry.ToRetryOptions(),
		logger:    logger,
	}
}

func (c *HTTPConnector) GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error) {
	ctxzap.Info(ctx, "generating questions via LLM service")

	var resp entity.GenerateQuestionsResponse
	err := c.do(ctx, c.config.QuestionsEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	questions := FilterQuestions(resp.Questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no valid questions in response", entity.ErrMalformedResponse)
	}

	ctxzap.Info(ctx, "questions generated successfully", zap.Int("count", len(questions)))
	return questions, nil
}

func (c *HTTPConnector) GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error) {
	ctxzap.Info(ctx, "generating analysis via LLM service")

	var resp entity.GenerateAnalysisResponse
	err := c.do(ctx, c.config.AnalysisEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	if resp.Result == "" {
		return "", fmt.Errorf("%w: empty result field", entity.ErrMalformedResponse)
	}

	ctxzap.Info(ctx, "analysis generated successfully", zap.Int("result_length", len(resp.Result)))
	return resp.Result, nil
}

func (c *HTTPConnector) GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error) {
	ctxzap.Info(ctx, "generating follow-up via LLM service")

	var resp entity.GenerateFollowUpResponse
	err := c.do(ctx, c.config.FollowUpEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	if resp.Result == "" {
		return "", fmt.Errorf("%w: empty result field", entity.ErrMalformedResponse)
	}

	ctxzap.Info(ctx, "follow-up generated successfully", zap.Int("result_length", len(resp.Result)))
	return resp.Result, nil
}

func (c *HTTPConnector) do(ctx context.Context, endpoint string, reqBody, respBody any) error {
	return retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, endpoint, reqBody, respBody)
	}, append(c.retryOpts, retry.Context(ctx))...)
}

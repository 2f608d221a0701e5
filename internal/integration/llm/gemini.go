package llm

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/google/generative-ai-go/genai"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/bizlens/analysis-backend/internal/agent"
	"github.com/bizlens/analysis-backend/internal/entity"
	pkgRetry "github.com/bizlens/analysis-backend/internal/pkg/retry"
)

// GeminiConnector generates text through the Gemini API. Prompt
// construction is delegated to the agent package; this type only moves
// strings across the wire.
type GeminiConnector struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	retryOpts []retry.Option
	logger    *zap.Logger
}

func NewGeminiConnector(ctx context.Context, apiKey, modelName string, retryCfg pkgRetry.RetryConfig, logger *zap.Logger) (*GeminiConnector, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(4096)

	return &GeminiConnector{
		client:    client,
		model:     model,
		retryOpts: retryCfg.ToRetryOptions(),
		logger:    logger,
	}, nil
}

func (c *GeminiConnector) Close() error {
	return c.client.Close()
}

// GenerateQuestions asks the model for clarifying questions and parses the
// JSON array out of its reply.
func (c *GeminiConnector) GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error) {
	ctxzap.Info(ctx, "generating questions via Gemini", zap.String("task", string(req.Task)))

	text, err := c.generate(ctx, agent.QuestionsPrompt(req.Task, req.Profile))
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(text)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "questions generated successfully", zap.Int("count", len(questions)))
	return questions, nil
}

// GenerateAnalysis asks the model for the final report text.
func (c *GeminiConnector) GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error) {
	ctxzap.Info(ctx, "generating analysis via Gemini", zap.String("task", string(req.Task)))

	text, err := c.generate(ctx, agent.AnalysisPrompt(req))
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "analysis generated successfully", zap.Int("result_length", len(text)))
	return text, nil
}

// GenerateFollowUp asks the model to answer a post-report question.
func (c *GeminiConnector) GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error) {
	ctxzap.Info(ctx, "generating follow-up via Gemini", zap.String("task", string(req.Task)))

	text, err := c.generate(ctx, agent.FollowUpPrompt(req))
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "follow-up generated successfully", zap.Int("result_length", len(text)))
	return text, nil
}

func (c *GeminiConnector) generate(ctx context.Context, prompt string) (string, error) {
	text, err := retry.DoWithData(func() (string, error) {
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		return responseText(resp)
	}, append(c.retryOpts, retry.Context(ctx))...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	return text, nil
}

// responseText extracts the text of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate list", entity.ErrMalformedResponse)
	}

	if text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

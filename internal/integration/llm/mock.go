package llm

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/agent"
	"github.com/bizlens/analysis-backend/internal/entity"
)

// MockConnector is a deterministic connector for local development and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error) {
	ctxzap.Info(ctx, "[MOCK] generating questions", zap.String("task", string(req.Task)))

	a := agent.ForTask(req.Task)
	questions := []entity.Question{
		{
			Type:    entity.QuestionTypeMultiChoice,
			Text:    fmt.Sprintf("Which area matters most for your %s effort?", a.Title),
			Options: []string{"Growth", "Cost", "Quality", "Speed"},
		},
		{
			Type:    entity.QuestionTypeSingleChoice,
			Text:    "Does the company operate in more than one market?",
			Options: []string{"Yes", "No", "Planning to"},
		},
		{
			Type: entity.QuestionTypeFreeText,
			Text: "What is the single biggest challenge the company faces today?",
		},
	}

	ctxzap.Info(ctx, "[MOCK] questions generated", zap.Int("count", len(questions)))
	return questions, nil
}

func (m *MockConnector) GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating analysis", zap.String("task", string(req.Task)))

	a := agent.ForTask(req.Task)
	report := fmt.Sprintf(`## Overview
%s analysis for %s (%s), based on %d answered questions. (MOCK)

## Key Findings
- The company profile and answers indicate a focused, early-stage effort.
- Answers were consistent across the questionnaire.

## Recommendations
- Validate the stated priorities with stakeholders.
- Revisit this analysis once initial actions have been taken.

## Risks
- Input was self-reported and may not reflect operational reality.

## Next Steps
- Share this report with the leadership team.
- Use the follow-up chat to drill into specific findings.`,
		a.Title, req.Profile.Name, req.Profile.Industry, len(req.Answers))

	ctxzap.Info(ctx, "[MOCK] analysis generated", zap.Int("result_length", len(report)))
	return report, nil
}

func (m *MockConnector) GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating follow-up response")

	return fmt.Sprintf("Regarding %q: within the scope of this %s analysis, the short answer is that the report's recommendations still apply. (MOCK)",
		req.UserInput, agent.ForTask(req.Task).Title), nil
}

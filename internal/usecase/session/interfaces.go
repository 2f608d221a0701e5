package session

import (
	"context"

	"github.com/bizlens/analysis-backend/internal/entity"
)

// LLMConnector is the text-generation dependency of the session flow.
type LLMConnector interface {
	GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error)
	GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error)
	GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error)
}

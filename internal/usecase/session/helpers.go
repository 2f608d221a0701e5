package session

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/entity"
)

// resolveQuestions returns the clarifying questions for a task/profile pair.
// Cache hits cost nothing; a miss makes exactly one model call. Only
// successful generations are cached, so the fallback set never shadows a
// later working model.
func (uc *SessionUsecase) resolveQuestions(ctx context.Context, session *entity.Session, task entity.Task, profile entity.CompanyProfile) []entity.Question {
	if cached, ok := uc.questionCache.Get(task, profile); ok {
		ctxzap.Info(ctx, "question cache hit", zap.String("task", string(task)))
		return cached
	}

	generated, err := uc.llmConnector.GenerateQuestions(ctx, &entity.GenerateQuestionsRequest{
		Task:    task,
		Profile: profile,
	})
	if err != nil || len(generated) == 0 {
		ctxzap.Warn(ctx, "question generation failed, using fallback set",
			zap.String("task", string(task)),
			zap.Error(err),
		)
		return uc.fallbackSet()
	}

	session.APICallCount++
	uc.questionCache.Put(task, profile, generated)

	ctxzap.Info(ctx, "questions generated",
		zap.String("task", string(task)),
		zap.Int("count", len(generated)),
	)

	return generated
}

func (uc *SessionUsecase) fallbackSet() []entity.Question {
	out := make([]entity.Question, len(uc.fallbackQuestions))
	copy(out, uc.fallbackQuestions)
	return out
}

// generateReport makes the analysis call and mutates the session in place.
// On success the session moves to SHOWING_REPORT; on failure it stays in
// AWAITING_ANSWERS with the error recorded, so the client can retry.
func (uc *SessionUsecase) generateReport(ctx context.Context, session *entity.Session) {
	result, err := uc.llmConnector.GenerateAnalysis(ctx, &entity.GenerateAnalysisRequest{
		Task:    *session.Task,
		Profile: *session.Profile,
		Answers: session.Answers,
		History: session.History,
	})
	if err != nil {
		msg := err.Error()
		session.Error = &msg
		ctxzap.Error(ctx, "analysis generation failed",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		return
	}

	session.APICallCount++
	session.Report = &result
	session.Error = nil
	session.Phase = entity.PhaseShowingReport
	session.History = append(session.History, entity.ChatMessage{
		Role:    "assistant",
		Content: result,
	})

	ctxzap.Info(ctx, "analysis report generated",
		zap.String("session_id", session.ID),
		zap.Int("report_length", len(result)),
	)
}

func buildTranscript(session *entity.Session) *entity.Transcript {
	answers := session.Answers
	if answers == nil {
		answers = []entity.Answer{}
	}
	followUps := session.FollowUps
	if followUps == nil {
		followUps = []entity.FollowUpTurn{}
	}

	return &entity.Transcript{
		SessionID:    session.ID,
		Task:         session.Task,
		Profile:      session.Profile,
		Answers:      answers,
		Report:       session.Report,
		ReportRating: session.ReportRating,
		FollowUps:    followUps,
		APICallCount: session.APICallCount,
		ExportedAt:   time.Now().UTC(),
	}
}

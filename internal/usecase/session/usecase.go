package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/entity"
	"github.com/bizlens/analysis-backend/internal/repository"
)

// SessionUsecase drives the four-phase analysis flow:
// AWAITING_INPUT -> AWAITING_ANSWERS -> SHOWING_REPORT -> FOLLOW_UP.
type SessionUsecase struct {
	sessionRepo       repository.SessionRepository
	questionCache     repository.QuestionCache
	llmConnector      LLMConnector
	fallbackQuestions []entity.Question
	logger            *zap.Logger
}

// NewUsecase creates a new session use case
func NewUsecase(
	sessionRepo repository.SessionRepository,
	questionCache repository.QuestionCache,
	llmConnector LLMConnector,
	fallbackQuestions []entity.Question,
	logger *zap.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		sessionRepo:       sessionRepo,
		questionCache:     questionCache,
		llmConnector:      llmConnector,
		fallbackQuestions: fallbackQuestions,
		logger:            logger,
	}
}

// StartSession creates an empty session awaiting the company profile.
func (uc *SessionUsecase) StartSession(ctx context.Context) (*entity.Session, error) {
	session := &entity.Session{
		ID:    uuid.New().String(),
		Phase: entity.PhaseAwaitingInput,
	}

	createdSession, err := uc.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return createdSession, nil
}

// SubmitProfile stores the company profile and task, resolves the clarifying
// questions (cache first, then one model call, then the static fallback) and
// advances the session to AWAITING_ANSWERS. Re-submitting while answering
// discards collected answers and re-resolves the questions.
func (uc *SessionUsecase) SubmitProfile(ctx context.Context, sessionID string, req *entity.SubmitProfileRequest) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Phase != entity.PhaseAwaitingInput && session.Phase != entity.PhaseAwaitingAnswers {
		return nil, fmt.Errorf("%w: phase '%s'", entity.ErrWrongPhase, session.Phase)
	}

	profile := req.Profile.Normalized()
	task := req.Task

	session.Profile = &profile
	session.Task = &task
	session.Answers = nil
	session.History = nil
	session.Error = nil

	session.Questions = uc.resolveQuestions(ctx, session, task, profile)
	session.Phase = entity.PhaseAwaitingAnswers

	saved, err := uc.sessionRepo.SaveSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	ctxzap.Info(ctx, "profile submitted",
		zap.String("session_id", sessionID),
		zap.String("task", string(task)),
		zap.Int("question_count", len(saved.Questions)),
	)

	return saved, nil
}

// SubmitAnswer pairs the answer with the current question. Answering the
// final question triggers the single analysis call; if that call fails the
// session stays answerable and the error is recorded for a manual retry.
func (uc *SessionUsecase) SubmitAnswer(ctx context.Context, sessionID, answer string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Phase != entity.PhaseAwaitingAnswers {
		return nil, fmt.Errorf("%w: phase '%s'", entity.ErrWrongPhase, session.Phase)
	}

	question := session.CurrentQuestion()
	if question == nil {
		// Questionnaire already complete; only the report retry is valid now.
		return nil, fmt.Errorf("%w: all questions answered", entity.ErrWrongPhase)
	}

	session.Answers = append(session.Answers, entity.Answer{
		Question: question.Text,
		Answer:   answer,
		Type:     question.Type,
	})
	session.History = append(session.History,
		entity.ChatMessage{Role: "assistant", Content: question.Text},
		entity.ChatMessage{Role: "user", Content: answer},
	)

	if session.AllAnswered() {
		uc.generateReport(ctx, session)
	}

	saved, err := uc.sessionRepo.SaveSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return saved, nil
}

// RetryReport re-runs a failed analysis call. It is a no-op guard against
// generating the report twice.
func (uc *SessionUsecase) RetryReport(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Report != nil {
		return nil, entity.ErrReportExists
	}

	if session.Phase != entity.PhaseAwaitingAnswers || !session.AllAnswered() {
		return nil, fmt.Errorf("%w: phase '%s'", entity.ErrWrongPhase, session.Phase)
	}

	uc.generateReport(ctx, session)

	saved, err := uc.sessionRepo.SaveSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return saved, nil
}

// SubmitFollowUp appends one follow-up turn, up to MaxFollowUps. The first
// follow-up moves the session from SHOWING_REPORT into FOLLOW_UP.
func (uc *SessionUsecase) SubmitFollowUp(ctx context.Context, sessionID, question string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Phase != entity.PhaseShowingReport && session.Phase != entity.PhaseFollowUp {
		return nil, fmt.Errorf("%w: phase '%s'", entity.ErrWrongPhase, session.Phase)
	}

	if len(session.FollowUps) >= entity.MaxFollowUps {
		return nil, entity.ErrTooManyFollowUps
	}

	req := &entity.GenerateFollowUpRequest{
		Task:      *session.Task,
		Profile:   *session.Profile,
		History:   session.History,
		UserInput: question,
	}

	answer, err := uc.llmConnector.GenerateFollowUp(ctx, req)
	if err != nil {
		// A failed call does not consume a turn.
		ctxzap.Error(ctx, "follow-up generation failed", zap.Error(err))
		return nil, fmt.Errorf("generate follow-up: %w", err)
	}
	session.APICallCount++

	session.Phase = entity.PhaseFollowUp
	session.FollowUps = append(session.FollowUps, entity.FollowUpTurn{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	})
	session.History = append(session.History,
		entity.ChatMessage{Role: "user", Content: question},
		entity.ChatMessage{Role: "assistant", Content: answer},
	)

	saved, err := uc.sessionRepo.SaveSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	ctxzap.Info(ctx, "follow-up turn added",
		zap.String("session_id", sessionID),
		zap.Int("turn_count", len(saved.FollowUps)),
	)

	return saved, nil
}

// Rate attaches a 1-5 rating to the report (empty turnID) or to a
// follow-up turn.
func (uc *SessionUsecase) Rate(ctx context.Context, sessionID, turnID string, rating int) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if turnID == "" {
		if session.Report == nil {
			return nil, entity.ErrNoReport
		}
		session.ReportRating = &rating
	} else {
		found := false
		for i := range session.FollowUps {
			if session.FollowUps[i].ID == turnID {
				session.FollowUps[i].Rating = &rating
				found = true
				break
			}
		}
		if !found {
			return nil, entity.ErrTurnNotFound
		}
	}

	saved, err := uc.sessionRepo.SaveSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return saved, nil
}

// GetSession retrieves a session by ID
func (uc *SessionUsecase) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ResetSession discards all accumulated state, keeping the session ID, and
// clears the question cache.
func (uc *SessionUsecase) ResetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	fresh := &entity.Session{
		ID:        session.ID,
		Phase:     entity.PhaseAwaitingInput,
		CreatedAt: session.CreatedAt,
	}

	uc.questionCache.Clear()

	saved, err := uc.sessionRepo.SaveSession(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	ctxzap.Info(ctx, "session reset", zap.String("session_id", sessionID))

	return saved, nil
}

// GetReportText returns the report body for export.
func (uc *SessionUsecase) GetReportText(ctx context.Context, sessionID string) (string, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	if session.Report == nil || *session.Report == "" {
		return "", entity.ErrNoReport
	}

	return *session.Report, nil
}

// GetTranscript returns the full session transcript for the JSON export.
// It contains exactly the data accumulated so far, at any phase.
func (uc *SessionUsecase) GetTranscript(ctx context.Context, sessionID string) (*entity.Transcript, error) {
	session, err := uc.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return buildTranscript(session), nil
}

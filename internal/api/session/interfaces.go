package session

import (
	"context"

	"github.com/bizlens/analysis-backend/internal/entity"
)

type SessionUsecase interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	SubmitProfile(ctx context.Context, sessionID string, req *entity.SubmitProfileRequest) (*entity.Session, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*entity.Session, error)
	RetryReport(ctx context.Context, sessionID string) (*entity.Session, error)
	SubmitFollowUp(ctx context.Context, sessionID, question string) (*entity.Session, error)
	Rate(ctx context.Context, sessionID, turnID string, rating int) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	ResetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	GetReportText(ctx context.Context, sessionID string) (string, error)
	GetTranscript(ctx context.Context, sessionID string) (*entity.Transcript, error)
}

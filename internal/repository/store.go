// Package repository holds the in-memory session state. The data model is
// transient: sessions live for the TTL or until reset, and nothing survives
// a restart.
package repository

import (
	"context"

	"github.com/bizlens/analysis-backend/internal/entity"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.Session) (*entity.Session, error)
	GetSessionByID(ctx context.Context, sessionID string) (*entity.Session, error)
	SaveSession(ctx context.Context, session *entity.Session) (*entity.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type QuestionCache interface {
	Get(task entity.Task, profile entity.CompanyProfile) ([]entity.Question, bool)
	Put(task entity.Task, profile entity.CompanyProfile, questions []entity.Question)
	Clear()
}

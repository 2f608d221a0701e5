package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bizlens/analysis-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

// SessionMemory keeps sessions in a TTL map. Every read and write goes
// through a deep copy so callers never share mutable slices with the store.
type SessionMemory struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessionMemory(ttl, cleanupInterval time.Duration) *SessionMemory {
	return &SessionMemory{
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (s *SessionMemory) CreateSession(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	if _, found := s.cache.Get(session.ID); found {
		return nil, fmt.Errorf("session %s already exists", session.ID)
	}

	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	s.cache.Set(session.ID, session.Clone(), s.ttl)
	return session.Clone(), nil
}

func (s *SessionMemory) GetSessionByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	v, found := s.cache.Get(sessionID)
	if !found {
		return nil, entity.ErrSessionNotFound
	}

	session, ok := v.(*entity.Session)
	if !ok {
		return nil, fmt.Errorf("unexpected session payload for %s", sessionID)
	}

	return session.Clone(), nil
}

func (s *SessionMemory) SaveSession(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	if _, found := s.cache.Get(session.ID); !found {
		return nil, entity.ErrSessionNotFound
	}

	session.UpdatedAt = time.Now().UTC()

	// Reset the TTL on every save so active sessions do not expire mid-flow.
	s.cache.Set(session.ID, session.Clone(), s.ttl)
	return session.Clone(), nil
}

func (s *SessionMemory) DeleteSession(ctx context.Context, sessionID string) error {
	if _, found := s.cache.Get(sessionID); !found {
		return entity.ErrSessionNotFound
	}

	s.cache.Delete(sessionID)
	return nil
}

package repository

import (
	"context"
	"sync"

	"quoteforge/internal/domain/wizard"
	"quoteforge/internal/usecase/interfaces"
)

// SessionMemoryRepository stores live wizard sessions in process memory.
//
// Sessions are single-interaction state with no cross-session coordination
// and no durability requirement; submitted quotes are what reach DynamoDB.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*wizard.Session
}

var _ interfaces.IWizardSessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]*wizard.Session)}
}

func (r *SessionMemoryRepository) Put(_ context.Context, s *wizard.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (*wizard.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) (*wizard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	delete(r.sessions, id)
	return s, nil
}

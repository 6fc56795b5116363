package storage

import (
	"sync"

	"github.com/studiolanding/promptgen/internal/models"
)

type SessionStore struct {
	sessions map[string]*models.PromptSession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.PromptSession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.PromptSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.PromptSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *SessionStore) GetAll() map[string]*models.PromptSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.PromptSession, len(s.sessions))
	for k, v := range s.sessions {
		result[k] = v
	}
	return result
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

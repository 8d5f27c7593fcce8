package mem

import (
	"sync"
	"time"

	"dermia/internal/quiz"
)

// SessionStore holds live quiz wizards keyed by session id. Sessions are
// strictly in-memory: a restart or expiry discards the in-progress answers.
// Nothing here is ever persisted.
type SessionStore interface {
	Put(sessionID string, wizard *quiz.Wizard, ttl time.Duration)

	// Get returns the wizard for the session and slides its expiry.
	// Returns nil if missing or expired.
	Get(sessionID string) *quiz.Wizard

	// Delete closes and removes the session. A no-op for unknown ids.
	Delete(sessionID string)

	// Sweep drops expired sessions and returns how many were removed.
	Sweep() int
}

type sessionEntry struct {
	wizard    *quiz.Wizard
	ttl       time.Duration
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.Mutex
	data map[string]sessionEntry
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *QuizSessions) Put(sessionID string, wizard *quiz.Wizard, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		wizard:    wizard,
		ttl:       ttl,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *QuizSessions) Get(sessionID string) *quiz.Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		e.wizard.Close()
		delete(s.data, sessionID)
		return nil
	}
	e.expiresAt = time.Now().Add(e.ttl)
	s.data[sessionID] = e
	return e.wizard
}

func (s *QuizSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[sessionID]; ok {
		e.wizard.Close()
		delete(s.data, sessionID)
	}
}

func (s *QuizSessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			e.wizard.Close()
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

package memory

// Package memory provides in-process adapters used in development mode
// and in tests, when no Redis is configured.

import (
	"context"
	"sync"
	"time"

	redisadapter "github.com/moness/staff-portal/internal/adapters/redis"
	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
)

// SessionStore keeps sessions in a map guarded by a mutex. Expired
// sessions are dropped lazily on Get.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates an in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, redisadapter.ErrNotFound
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return domainauth.Session{}, redisadapter.ErrNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// AlertStore keeps the one-shot alert register in a map. Whole-value
// replacement on Set preserves the last-write-wins contract.
type AlertStore struct {
	mu     sync.Mutex
	alerts map[string]model.AlertPayload
}

// NewAlertStore creates an in-memory alert register.
func NewAlertStore() *AlertStore {
	return &AlertStore{alerts: make(map[string]model.AlertPayload)}
}

func (s *AlertStore) Set(_ context.Context, sessionID string, payload model.AlertPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts[sessionID] = payload
	return nil
}

func (s *AlertStore) Take(_ context.Context, sessionID string) (model.AlertPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.alerts[sessionID]
	if !ok {
		return model.AlertPayload{}, redisadapter.ErrNotFound
	}
	delete(s.alerts, sessionID)
	return payload, nil
}

package repofake

import (
	"fmt"
	"sync"

	"github.com/bloglane/admin-auth-server/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory implementation of sessions.Repo
type FakeSessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]sessions.Session
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{
		sessions: make(map[string]sessions.Session),
	}
}

func (r *FakeSessionRepo) Upsert(sessionID string, session sessions.Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = session
	return nil
}

func (r *FakeSessionRepo) Get(sessionID string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return sessions.Session{}, sessions.ErrNotFound
	}
	return session, nil
}

func (r *FakeSessionRepo) ClearAdmin(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil // Already doesn't exist, no error
	}
	session.AdminID = ""
	r.sessions[sessionID] = session
	return nil
}

func (r *FakeSessionRepo) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

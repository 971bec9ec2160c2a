package sessions

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a session id does not resolve.
var ErrNotFound = errors.New("session not found")

// Session is the server-side state bound to a session cookie. The only
// field the authority interprets is the bound admin id: its presence means
// the request flow is authenticated, its absence means it is not.
type Session struct {
	AdminID   string
	CreatedAt time.Time
}

// Bound reports whether the session has an admin bound to it.
func (s Session) Bound() bool {
	return s.AdminID != ""
}

// Repo defines the interface for session storage operations.
type Repo interface {
	// Upsert creates or updates the session for sessionID
	Upsert(sessionID string, session Session) error

	// Get retrieves a session by ID
	Get(sessionID string) (Session, error)

	// ClearAdmin removes the bound admin id from a session, leaving the
	// session itself in place. Clearing an unknown session is a no-op.
	ClearAdmin(sessionID string) error

	// Delete removes a session entirely
	Delete(sessionID string) error
}

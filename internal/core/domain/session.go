package domain

import "context"

// Session is the server-side record bound to a client's session cookie.
// It carries the issued access token and the authenticated username; the
// username for review operations always comes from here, never from
// client input.
//
// The record itself has no expiry: it lives until cleared externally.
// Time-limiting is the embedded access token's job, so an aged session
// fails token verification rather than silently vanishing.
type Session struct {
	ID          string
	Username    string
	AccessToken string
}

// SessionStore defines how sessions are stored and retrieved.
// Get returns (nil, nil) when the session does not exist.
type SessionStore interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionSignedIn  EventType = "session_signed_in"
	EventSessionSignedOut EventType = "session_signed_out"
	EventSessionRevoked   EventType = "session_revoked"
)

// Event represents a session lifecycle event emitted by the session store.
// Token is empty for sign-out/revocation events; a non-empty Token means a
// live session exists for UserID.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Token     string    `json:"token,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live reports whether the event carries a usable session token.
func (e Event) Live() bool {
	return e.Token != ""
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated user/team context.
type Session struct {
	ID        string
	ServerURL string
	Token     string
	UserID    string
	TeamID    string
	StartedAt time.Time
}

// NewSession creates a session with a fresh identifier.
func NewSession(serverURL, token, userID, teamID string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		ServerURL: serverURL,
		Token:     token,
		UserID:    userID,
		TeamID:    teamID,
		StartedAt: time.Now(),
	}
}

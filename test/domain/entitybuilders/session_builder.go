//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// SessionBuilder helps create test sessions with a fluent interface.
type SessionBuilder struct {
	*testkit.BaseBuilder
	id        string
	serverURL string
	token     string
	userID    string
	teamID    string
}

// NewSessionBuilder creates a new session builder with sensible defaults.
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "session-1",
		serverURL:   "https://api.codestream.test",
		token:       "test-token",
		userID:      "user-1",
		teamID:      "team-1",
	}
}

// WithID sets the session identifier.
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.id = id
	return b
}

// WithServerURL sets the API server URL.
func (b *SessionBuilder) WithServerURL(serverURL string) *SessionBuilder {
	b.serverURL = serverURL
	return b
}

// WithToken sets the access token.
func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.token = token
	return b
}

// WithUserID sets the user identifier.
func (b *SessionBuilder) WithUserID(userID string) *SessionBuilder {
	b.userID = userID
	return b
}

// WithTeamID sets the team identifier.
func (b *SessionBuilder) WithTeamID(teamID string) *SessionBuilder {
	b.teamID = teamID
	return b
}

// Build creates the session (satisfies testkit.Builder interface).
func (b *SessionBuilder) Build() interface{} {
	return b.BuildSession()
}

// BuildSession creates the session with a concrete return type.
func (b *SessionBuilder) BuildSession() *entities.Session {
	return &entities.Session{
		ID:        b.id,
		ServerURL: b.serverURL,
		Token:     b.token,
		UserID:    b.userID,
		TeamID:    b.teamID,
		StartedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SessionBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "session-1"
	b.serverURL = "https://api.codestream.test"
	b.token = "test-token"
	b.userID = "user-1"
	b.teamID = "team-1"
	return b
}

// Clone creates a deep copy of the SessionBuilder.
func (b *SessionBuilder) Clone() testkit.Builder {
	return &SessionBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		serverURL:   b.serverURL,
		token:       b.token,
		userID:      b.userID,
		teamID:      b.teamID,
	}
}

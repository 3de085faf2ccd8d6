package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// AuthenticationRepository exchanges credentials for a session.
type AuthenticationRepository interface {
	Login(ctx context.Context, settings *entities.Settings) (*entities.Session, error)
}

// ErrNotAuthenticated is returned when no credentials are available.
var ErrNotAuthenticated = errors.New("not authenticated: no access token configured")

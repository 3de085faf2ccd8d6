package authentication

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// TokenRepository starts a session from the access token in the settings.
// The token is not validated against the server.
type TokenRepository struct{}

var _ repositories.AuthenticationRepository = (*TokenRepository)(nil)

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{}
}

// Login returns a new session, or repositories.ErrNotAuthenticated without a token.
func (it *TokenRepository) Login(ctx context.Context, settings *entities.Settings) (*entities.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if settings.Token == "" {
		return nil, repositories.ErrNotAuthenticated
	}
	session := entities.NewSession(settings.ServerURL, settings.Token, "", settings.TeamID)
	logger.Infof("Signed in to %s (session %s)", settings.ServerURL, session.ID)
	return session, nil
}

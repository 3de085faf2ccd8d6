//go:build unit

package authentication_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories/authentication"
)

func TestTokenRepositoryLogin(t *testing.T) {
	t.Parallel()

	t.Run("should start a session when a token is configured", func(t *testing.T) {
		t.Parallel()

		// given
		repo := authentication.NewTokenRepository()
		settings := &entities.Settings{ServerURL: "https://api.example.com", Token: "secret", TeamID: "team-1"}

		// when
		session, err := repo.Login(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "https://api.example.com", session.ServerURL)
		assert.Equal(t, "secret", session.Token)
		assert.Equal(t, "team-1", session.TeamID)
	})

	t.Run("should return distinct sessions on every login", func(t *testing.T) {
		t.Parallel()

		// given
		repo := authentication.NewTokenRepository()
		settings := &entities.Settings{ServerURL: "https://api.example.com", Token: "secret"}

		// when
		first, firstErr := repo.Login(context.Background(), settings)
		second, secondErr := repo.Login(context.Background(), settings)

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("should fail without a token", func(t *testing.T) {
		t.Parallel()

		// given
		repo := authentication.NewTokenRepository()
		settings := &entities.Settings{ServerURL: "https://api.example.com"}

		// when
		session, err := repo.Login(context.Background(), settings)

		// then
		require.ErrorIs(t, err, repositories.ErrNotAuthenticated)
		assert.Nil(t, session)
	})
}

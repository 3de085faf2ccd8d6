//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// StubAuthenticationRepository is a stub implementation of repositories.AuthenticationRepository.
type StubAuthenticationRepository struct {
	Session        *entities.Session
	LoginErr       error
	LoginCallCount int
}

var _ repositories.AuthenticationRepository = (*StubAuthenticationRepository)(nil)

func (s *StubAuthenticationRepository) Login(
	_ context.Context,
	_ *entities.Settings,
) (*entities.Session, error) {
	s.LoginCallCount++
	return s.Session, s.LoginErr
}

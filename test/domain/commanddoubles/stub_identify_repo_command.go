//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// StubIdentifyRepoCommand is a stub implementation of commands.IdentifyRepo.
// Results and errors are keyed by repository path.
type StubIdentifyRepoCommand struct {
	mu               sync.Mutex
	Results          map[string]entities.IdentifyRepoResult
	Errors           map[string]error
	ExecuteCallCount int
}

var _ commands.IdentifyRepo = (*StubIdentifyRepoCommand)(nil)

func (s *StubIdentifyRepoCommand) Execute(
	_ context.Context,
	repo entities.ReposScm,
) (entities.IdentifyRepoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ExecuteCallCount++
	if err := s.Errors[repo.Path]; err != nil {
		return entities.IdentifyRepoResult{}, err
	}
	if result, ok := s.Results[repo.Path]; ok {
		return result, nil
	}
	return entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}, nil
}

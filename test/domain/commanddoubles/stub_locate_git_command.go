//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// StubLocateGitCommand is a stub implementation of commands.LocateGit.
type StubLocateGitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Location         entities.GitLocation
	LastHint         string
}

var _ commands.LocateGit = (*StubLocateGitCommand)(nil)

func (s *StubLocateGitCommand) Execute(_ context.Context, hint string) (entities.GitLocation, error) {
	s.ExecuteCallCount++
	s.LastHint = hint
	if s.ExecuteErr != nil {
		return entities.GitLocation{}, s.ExecuteErr
	}
	return s.Location, nil
}

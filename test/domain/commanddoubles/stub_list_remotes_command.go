//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// StubListRemotesCommand is a stub implementation of commands.ListRemotes.
type StubListRemotesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Remotes          []entities.GitRemote
	LastOpts         commands.ListRemotesOptions
}

var _ commands.ListRemotes = (*StubListRemotesCommand)(nil)

func (s *StubListRemotesCommand) Execute(
	_ context.Context,
	opts commands.ListRemotesOptions,
) ([]entities.GitRemote, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Remotes, s.ExecuteErr
}

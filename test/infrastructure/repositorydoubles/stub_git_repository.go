//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// StubGitRepository is a stub implementation of repositories.GitRepository.
type StubGitRepository struct {
	Root          string
	RootErr       error
	Branch        string
	BranchErr     error
	RemoteList    []entities.GitRemote
	RemotesErr    error
	RootCallCount int
}

var _ repositories.GitRepository = (*StubGitRepository)(nil)

func (s *StubGitRepository) RepoRoot(_ string) (string, error) {
	s.RootCallCount++
	return s.Root, s.RootErr
}

func (s *StubGitRepository) CurrentBranch(_ string) (string, error) {
	return s.Branch, s.BranchErr
}

func (s *StubGitRepository) Remotes(_ string) ([]entities.GitRemote, error) {
	return s.RemoteList, s.RemotesErr
}

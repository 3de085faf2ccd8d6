package services

import (
	"context"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// GitService runs git through the located executable. The location is
// resolved once per session.
type GitService struct {
	locate   commands.LocateGit
	list     commands.ListRemotes
	hint     string
	strategy entities.RemoteWeightStrategy

	mu       sync.Mutex
	location *entities.GitLocation
}

// NewGitService creates a GitService starting its search at hint.
func NewGitService(
	locate commands.LocateGit,
	list commands.ListRemotes,
	hint string,
	strategy entities.RemoteWeightStrategy,
) *GitService {
	return &GitService{locate: locate, list: list, hint: hint, strategy: strategy}
}

// Location returns the git executable of this session. Failures are not
// cached.
func (it *GitService) Location(ctx context.Context) (entities.GitLocation, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.location != nil {
		return *it.location, nil
	}
	location, err := it.locate.Execute(ctx, it.hint)
	if err != nil {
		return entities.GitLocation{}, err
	}
	it.location = &location
	return location, nil
}

// Remotes lists the remotes of the repository at repoPath.
func (it *GitService) Remotes(ctx context.Context, repoPath string) ([]entities.GitRemote, error) {
	location, err := it.Location(ctx)
	if err != nil {
		return nil, err
	}
	hint := location.Path
	if location.IsWsl {
		hint = it.hint
	}
	return it.list.Execute(ctx, commands.ListRemotesOptions{
		RepoPath: repoPath,
		GitHint:  hint,
		Strategy: it.strategy,
	})
}

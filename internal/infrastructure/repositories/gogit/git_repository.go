package gogit

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// Repository reads repository metadata with go-git, so no git executable is
// required. It backs the session independent git services.
type Repository struct{}

// NewGitRepository creates a new go-git backed Repository.
func NewGitRepository() *Repository {
	return &Repository{}
}

// RepoRoot returns the root of the working tree containing path.
func (it *Repository) RepoRoot(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("repository at %s has no worktree: %w", path, err)
	}
	return worktree.Filesystem.Root(), nil
}

// CurrentBranch returns the short branch name HEAD points to. An unborn branch
// (fresh repository without commits) still reports its name; a detached HEAD
// reports "".
func (it *Repository) CurrentBranch(repoPath string) (string, error) {
	repo, err := open(repoPath)
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD of %s: %w", repoPath, err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", nil
}

// Remotes returns every configured remote with its fetch URLs.
func (it *Repository) Remotes(repoPath string) ([]entities.GitRemote, error) {
	repo, err := open(repoPath)
	if err != nil {
		return nil, err
	}
	configured, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes of %s: %w", repoPath, err)
	}

	remotes := make([]entities.GitRemote, 0, len(configured))
	for _, remote := range configured {
		cfg := remote.Config()
		if len(cfg.URLs) == 0 {
			continue
		}
		parsed := entities.NewGitRemote(repoPath, cfg.Name, cfg.URLs[0], entities.RemoteTypeFetch, entities.RemoteTypePush)
		for _, extra := range cfg.URLs[1:] {
			parsed.Types = append(parsed.Types, entities.RemoteURL{URL: extra, Type: entities.RemoteTypeFetch})
		}
		remotes = append(remotes, parsed)
	}
	return remotes, nil
}

func open(path string) (*git.Repository, error) {
	//nolint:exhaustruct // only DetectDotGit matters here
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s is not inside a git repository: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}

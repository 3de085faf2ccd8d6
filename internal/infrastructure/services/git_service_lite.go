package services

import (
	"os"
	"path/filepath"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// GitServiceLite answers repository questions straight from the object store,
// without a git executable.
type GitServiceLite struct {
	git repositories.GitRepository
}

// NewGitServiceLite creates a GitServiceLite.
func NewGitServiceLite(git repositories.GitRepository) *GitServiceLite {
	return &GitServiceLite{git: git}
}

// RepoRoot returns the worktree root containing filePath.
func (it *GitServiceLite) RepoRoot(filePath string) (string, error) {
	return it.git.RepoRoot(directoryOf(filePath))
}

// CurrentBranch returns the checked out branch of the repository at repoPath.
func (it *GitServiceLite) CurrentBranch(repoPath string) (string, error) {
	return it.git.CurrentBranch(repoPath)
}

// Remotes returns the configured remotes of the repository at repoPath.
func (it *GitServiceLite) Remotes(repoPath string) ([]entities.GitRemote, error) {
	return it.git.Remotes(repoPath)
}

// directoryOf returns path itself for directories and its parent otherwise.
func directoryOf(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

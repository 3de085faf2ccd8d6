package repositories

import (
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// GitRepository reads repository metadata without a git executable.
type GitRepository interface {
	// RepoRoot returns the working tree root containing path.
	RepoRoot(path string) (string, error)

	// CurrentBranch returns the short name of HEAD, or "" when detached.
	CurrentBranch(repoPath string) (string, error)

	// Remotes returns the configured remotes of the repository at repoPath.
	Remotes(repoPath string) ([]entities.GitRemote, error)
}

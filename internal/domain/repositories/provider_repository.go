package repositories

import (
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// ProviderRepository abstracts a third-party hosting provider (GitHub, GitLab, ...).
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// Matches reports whether the provider serves the given remote domain.
	Matches(domain string) bool

	// RepoWebURL returns the browser URL of the remote's repository.
	RepoWebURL(remote entities.GitRemote) string

	// BranchWebURL returns the browser URL of a branch in the remote's repository.
	BranchWebURL(remote entities.GitRemote, branch string) string
}

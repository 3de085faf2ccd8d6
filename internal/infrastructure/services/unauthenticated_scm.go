package services

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	infraRepos "github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories"
)

// RepoInfo describes the repository a file belongs to.
type RepoInfo struct {
	RepoPath string               `json:"repoPath"`
	Branch   string               `json:"branch,omitempty"`
	Remotes  []entities.GitRemote `json:"remotes"`
}

// UnauthenticatedScm answers source control questions that need no session.
type UnauthenticatedScm struct {
	locator   *RepositoryLocator
	lite      *GitServiceLite
	providers *infraRepos.ProviderRegistry
}

// NewUnauthenticatedScm creates an UnauthenticatedScm.
func NewUnauthenticatedScm(
	locator *RepositoryLocator,
	lite *GitServiceLite,
	providers *infraRepos.ProviderRegistry,
) *UnauthenticatedScm {
	return &UnauthenticatedScm{locator: locator, lite: lite, providers: providers}
}

// RepoInfo returns the repository, branch and remotes of filePath. A detached
// HEAD leaves Branch empty.
func (it *UnauthenticatedScm) RepoInfo(filePath string) (RepoInfo, error) {
	root, err := it.locator.Locate(filePath)
	if err != nil {
		return RepoInfo{}, err
	}

	branch, err := it.lite.CurrentBranch(root)
	if err != nil {
		logger.Debugf("No current branch in %s: %v", root, err)
		branch = ""
	}

	remotes, err := it.lite.Remotes(root)
	if err != nil {
		return RepoInfo{}, err
	}
	for i := range remotes {
		if provider, ok := it.providers.Identify(remotes[i].Domain); ok {
			remotes[i].Provider = provider
		}
	}
	commands.SortRemotes(remotes, "")

	return RepoInfo{RepoPath: root, Branch: branch, Remotes: remotes}, nil
}

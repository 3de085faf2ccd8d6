package commands

import (
	"context"
	"fmt"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories"
)

// ListRemotes is the interface for the remote listing command.
type ListRemotes interface {
	Execute(ctx context.Context, opts ListRemotesOptions) ([]entities.GitRemote, error)
}

// ListRemotesOptions holds runtime options for listing remotes.
type ListRemotesOptions struct {
	RepoPath string
	GitHint  string
	Strategy entities.RemoteWeightStrategy
}

// ListRemotesCommand lists remotes through the git executable and tags each
// one with the hosting provider serving it.
type ListRemotesCommand struct {
	locateGit        LocateGit
	shell            repositories.ShellRepository
	providerRegistry *infraRepos.ProviderRegistry
}

// NewListRemotesCommand creates a new ListRemotesCommand.
func NewListRemotesCommand(
	locateGit LocateGit,
	shell repositories.ShellRepository,
	providerRegistry *infraRepos.ProviderRegistry,
) *ListRemotesCommand {
	return &ListRemotesCommand{
		locateGit:        locateGit,
		shell:            shell,
		providerRegistry: providerRegistry,
	}
}

// Execute returns the remotes of the repository, most important first.
func (it *ListRemotesCommand) Execute(ctx context.Context, opts ListRemotesOptions) ([]entities.GitRemote, error) {
	location, err := it.locateGit.Execute(ctx, opts.GitHint)
	if err != nil {
		return nil, err
	}

	name, args := location.Command("remote", "-v")
	output, err := it.shell.RunCommandInDir(ctx, opts.RepoPath, name, args...)
	if err != nil {
		return nil, fmt.Errorf("git remote -v: %w", err)
	}

	remotes := NewRemoteParser(it.shell).Parse(ctx, output, opts.RepoPath)
	for i := range remotes {
		if provider, ok := it.providerRegistry.Identify(remotes[i].Domain); ok {
			remotes[i].Provider = provider
		}
	}
	SortRemotes(remotes, opts.Strategy)

	logger.Debugf("Found %d remote(s) in %s", len(remotes), opts.RepoPath)
	return remotes, nil
}

// SortRemotes orders remotes by weight, keeping the input order for ties.
// An empty strategy uses the default weights.
func SortRemotes(remotes []entities.GitRemote, strategy entities.RemoteWeightStrategy) {
	weight := func(r entities.GitRemote) int {
		if strategy == "" {
			return r.Weight()
		}
		return r.WeightByStrategy(strategy)
	}
	sort.SliceStable(remotes, func(i, j int) bool {
		return weight(remotes[i]) < weight(remotes[j])
	})
}

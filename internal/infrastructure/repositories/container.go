package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/codestream-agent/internal/domain/repositories"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories/authentication"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories/gogit"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories/providers"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all hosting providers
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register(providers.NewGitHubProvider())
		reg.Register(providers.NewGitLabProvider())
		reg.Register(providers.NewBitbucketProvider())
		reg.Register(providers.NewAzureDevOpsProvider())
		return reg
	}); err != nil {
		return err
	}

	// Bind domain interfaces to implementations
	if err := container.Provide(func() domainRepos.ShellRepository {
		return shell.NewShellRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.GitRepository {
		return gogit.NewGitRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.AuthenticationRepository {
		return authentication.NewTokenRepository()
	}); err != nil {
		return err
	}

	return nil
}

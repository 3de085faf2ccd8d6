package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewLocateGitCommand); err != nil {
		return err
	}
	if err := container.Provide(NewIdentifyRepoCommand); err != nil {
		return err
	}
	if err := container.Provide(NewListRemotesCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *LocateGitCommand) LocateGit {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *IdentifyRepoCommand) IdentifyRepo {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListRemotesCommand) ListRemotes {
		return impl
	}); err != nil {
		return err
	}

	return nil
}

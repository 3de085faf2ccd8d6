package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings depend on the --config flag, so the loader is injected instead
	if err := container.Provide(func() SettingsLoader {
		return LoadSettings
	}); err != nil {
		return err
	}

	return nil
}

package internal

import "github.com/rios0rios0/codestream-agent/internal/domain/entities"

// AppInternal is the root object resolved from the DIG container.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers exposed as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

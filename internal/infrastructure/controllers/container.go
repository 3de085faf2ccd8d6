package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewGitController); err != nil {
		return err
	}
	if err := container.Provide(NewIdentifyController); err != nil {
		return err
	}
	if err := container.Provide(NewRemotesController); err != nil {
		return err
	}
	if err := container.Provide(NewSessionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	gitController *GitController,
	identifyController *IdentifyController,
	remotesController *RemotesController,
	sessionController *SessionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		gitController,
		identifyController,
		remotesController,
		sessionController,
	}
}

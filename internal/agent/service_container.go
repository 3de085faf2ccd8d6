package agent

import (
	"errors"
	"sync/atomic"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/services"
)

// ErrContainerNotInitialized is returned when the process container is read
// before Initialize.
var ErrContainerNotInitialized = errors.New("Container not yet initialized.") //nolint:revive,staticcheck // message is part of the contract

//nolint:gochecknoglobals // process wide singleton
var current atomic.Pointer[ServiceContainer]

// ServiceContainer holds the collaborators that live for the whole process.
type ServiceContainer struct {
	agent     *Agent
	session   *entities.Session
	documents *services.DocumentManager
	reporter  *services.ErrorReporter
	telemetry *services.Telemetry
	urls      *services.URLBuilder
	lite      *services.GitServiceLite
	locator   *services.RepositoryLocator
	scm       *services.UnauthenticatedScm
}

// Initialize builds the process container and makes it the one returned by
// Instance. Calling it again replaces the previous container.
func Initialize(agent *Agent, session *entities.Session) (*ServiceContainer, error) {
	urls, err := services.NewURLBuilder(agent.Settings)
	if err != nil {
		return nil, err
	}

	lite := services.NewGitServiceLite(agent.Git)
	locator := services.NewRepositoryLocator(lite)
	container := &ServiceContainer{
		agent:     agent,
		session:   session,
		documents: services.NewDocumentManager(),
		reporter:  services.NewErrorReporter(agent.Log, session),
		telemetry: services.NewTelemetry(agent.Log, agent.Settings.Telemetry, session),
		urls:      urls,
		lite:      lite,
		locator:   locator,
		scm:       services.NewUnauthenticatedScm(locator, lite, agent.Providers),
	}

	if previous := current.Swap(container); previous != nil {
		logger.Warn("Service container initialized twice, replacing the previous one")
	}
	return container, nil
}

// Instance returns the process container.
func Instance() (*ServiceContainer, error) {
	container := current.Load()
	if container == nil {
		return nil, ErrContainerNotInitialized
	}
	return container, nil
}

// MustInstance is like Instance but panics when the container is missing.
func MustInstance() *ServiceContainer {
	container, err := Instance()
	if err != nil {
		panic(err)
	}
	return container
}

func (it *ServiceContainer) Agent() *Agent                                  { return it.agent }
func (it *ServiceContainer) Session() *entities.Session                     { return it.session }
func (it *ServiceContainer) Documents() *services.DocumentManager           { return it.documents }
func (it *ServiceContainer) ErrorReporter() *services.ErrorReporter         { return it.reporter }
func (it *ServiceContainer) Telemetry() *services.Telemetry                 { return it.telemetry }
func (it *ServiceContainer) URLs() *services.URLBuilder                     { return it.urls }
func (it *ServiceContainer) GitServiceLite() *services.GitServiceLite       { return it.lite }
func (it *ServiceContainer) RepositoryLocator() *services.RepositoryLocator { return it.locator }
func (it *ServiceContainer) UnauthenticatedScm() *services.UnauthenticatedScm {
	return it.scm
}

package agent

import (
	"errors"
	"os"
	"runtime/debug"
	"sync/atomic"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	infraRepos "github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/services"
)

// ErrSessionContainerNotInitialized is returned when the session container is
// read before login or after logout.
var ErrSessionContainerNotInitialized = errors.New("SessionContainer not yet initialized.") //nolint:revive,staticcheck // message is part of the contract

//nolint:gochecknoglobals // session wide singleton
var (
	currentSession    atomic.Pointer[SessionServiceContainer]
	sessionGeneration atomic.Uint64
)

// SessionServiceContainer holds the collaborators of one logged in session.
// Every login builds a new one; references to older containers stay usable
// but IsCurrent reports false for them.
type SessionServiceContainer struct {
	generation uint64
	session    *entities.Session

	git        *services.GitService
	files      *services.FileService
	codemarks  *services.EntityManager[entities.Codemark]
	markers    *services.EntityManager[entities.Marker]
	posts      *services.EntityManager[entities.Post]
	repos      *services.EntityManager[entities.Repo]
	streams    *services.EntityManager[entities.Stream]
	teams      *services.EntityManager[entities.Team]
	users      *services.EntityManager[entities.User]
	companies  *services.EntityManager[entities.Company]
	reviews    *services.EntityManager[entities.Review]
	codeErrors *services.EntityManager[entities.CodeError]
	providers  *infraRepos.ProviderRegistry
	mappings   *services.RepositoryMappings
	ignore     *services.IgnoreFiles
	textFiles  *services.TextFiles
	identifier commands.IdentifyRepo
}

// InitializeSession builds a fresh session container on top of the process
// container.
func InitializeSession(session *entities.Session) (*SessionServiceContainer, error) {
	process, err := Instance()
	if err != nil {
		return nil, err
	}
	agent := process.Agent()

	container := &SessionServiceContainer{
		generation: sessionGeneration.Add(1),
		session:    session,
		git: services.NewGitService(
			agent.LocateGit,
			agent.ListRemotes,
			agent.Settings.Git.Path,
			"",
		),
		files:      services.NewFileService(process.RepositoryLocator()),
		codemarks:  services.NewEntityManager[entities.Codemark](),
		markers:    services.NewEntityManager[entities.Marker](),
		posts:      services.NewEntityManager[entities.Post](),
		repos:      services.NewEntityManager[entities.Repo](),
		streams:    services.NewEntityManager[entities.Stream](),
		teams:      services.NewEntityManager[entities.Team](),
		users:      services.NewEntityManager[entities.User](),
		companies:  services.NewEntityManager[entities.Company](),
		reviews:    services.NewEntityManager[entities.Review](),
		codeErrors: services.NewEntityManager[entities.CodeError](),
		providers:  agent.Providers,
		mappings:   services.NewRepositoryMappings(),
		ignore:     services.NewIgnoreFiles(),
		textFiles:  services.NewTextFiles(process.Documents()),
		identifier: agent.IdentifyRepo,
	}
	currentSession.Store(container)
	logger.Debugf("Session container %d initialized", container.generation)
	return container, nil
}

// IsSessionInitialized reports whether a session container exists.
func IsSessionInitialized() bool {
	return currentSession.Load() != nil
}

// SessionInstance returns the live session container.
func SessionInstance() (*SessionServiceContainer, error) {
	container := currentSession.Load()
	if container == nil {
		if os.Getenv("DEBUG") == "true" {
			logger.Debugf("Session container read before login:\n%s", debug.Stack())
		}
		return nil, ErrSessionContainerNotInitialized
	}
	return container, nil
}

// ResetSession drops the live session container on logout.
func ResetSession() {
	currentSession.Store(nil)
}

// IsCurrent reports whether this container is still the live one.
func (it *SessionServiceContainer) IsCurrent() bool {
	return currentSession.Load() == it
}

// Generation numbers session containers in creation order.
func (it *SessionServiceContainer) Generation() uint64 { return it.generation }

func (it *SessionServiceContainer) Session() *entities.Session   { return it.session }
func (it *SessionServiceContainer) Git() *services.GitService    { return it.git }
func (it *SessionServiceContainer) Files() *services.FileService { return it.files }

func (it *SessionServiceContainer) Codemarks() *services.EntityManager[entities.Codemark] {
	return it.codemarks
}

func (it *SessionServiceContainer) Markers() *services.EntityManager[entities.Marker] {
	return it.markers
}

func (it *SessionServiceContainer) Posts() *services.EntityManager[entities.Post] {
	return it.posts
}

func (it *SessionServiceContainer) Repos() *services.EntityManager[entities.Repo] {
	return it.repos
}

func (it *SessionServiceContainer) Streams() *services.EntityManager[entities.Stream] {
	return it.streams
}

func (it *SessionServiceContainer) Teams() *services.EntityManager[entities.Team] {
	return it.teams
}

func (it *SessionServiceContainer) Users() *services.EntityManager[entities.User] {
	return it.users
}

func (it *SessionServiceContainer) Companies() *services.EntityManager[entities.Company] {
	return it.companies
}

func (it *SessionServiceContainer) Reviews() *services.EntityManager[entities.Review] {
	return it.reviews
}

func (it *SessionServiceContainer) CodeErrors() *services.EntityManager[entities.CodeError] {
	return it.codeErrors
}

func (it *SessionServiceContainer) ProviderRegistry() *infraRepos.ProviderRegistry {
	return it.providers
}

func (it *SessionServiceContainer) RepositoryMappings() *services.RepositoryMappings {
	return it.mappings
}

func (it *SessionServiceContainer) IgnoreFiles() *services.IgnoreFiles { return it.ignore }
func (it *SessionServiceContainer) TextFiles() *services.TextFiles     { return it.textFiles }
func (it *SessionServiceContainer) RepoIdentifier() commands.IdentifyRepo {
	return it.identifier
}

package agent

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories"
)

// Agent is the long lived handle the containers are built from: loaded
// settings plus the injected repositories and commands.
type Agent struct {
	Settings     *entities.Settings
	Log          logger.FieldLogger
	Git          repositories.GitRepository
	Providers    *infraRepos.ProviderRegistry
	LocateGit    commands.LocateGit
	ListRemotes  commands.ListRemotes
	IdentifyRepo commands.IdentifyRepo
}

// Dependencies groups the injected collaborators of an Agent.
type Dependencies struct {
	Git          repositories.GitRepository
	Providers    *infraRepos.ProviderRegistry
	LocateGit    commands.LocateGit
	ListRemotes  commands.ListRemotes
	IdentifyRepo commands.IdentifyRepo
}

// NewAgent creates an Agent logging through the standard logger.
func NewAgent(settings *entities.Settings, deps Dependencies) *Agent {
	return &Agent{
		Settings:     settings,
		Log:          logger.StandardLogger(),
		Git:          deps.Git,
		Providers:    deps.Providers,
		LocateGit:    deps.LocateGit,
		ListRemotes:  deps.ListRemotes,
		IdentifyRepo: deps.IdentifyRepo,
	}
}

package controllers

import (
	"context"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codestream-agent/internal/agent"
	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/codestream-agent/internal/infrastructure/repositories"
	"github.com/rios0rios0/codestream-agent/internal/infrastructure/services"
)

// SessionStatus is the report printed by the session subcommand.
type SessionStatus struct {
	SessionID   string                   `json:"sessionId"`
	TeamID      string                   `json:"teamId,omitempty"`
	ServerURL   string                   `json:"serverUrl"`
	Git         *entities.GitLocation    `json:"git,omitempty"`
	Repo        *services.RepoInfo       `json:"repo,omitempty"`
	ProjectType entities.RepoProjectType `json:"projectType,omitempty"`
	Projects    []entities.Project       `json:"projects,omitempty"`
}

// SessionController handles the "session" subcommand: it logs in, builds the
// service containers and reports what the session sees for a path.
type SessionController struct {
	auth         repositories.AuthenticationRepository
	loadSettings entities.SettingsLoader
	deps         agent.Dependencies
}

// NewSessionController creates a new SessionController.
func NewSessionController(
	auth repositories.AuthenticationRepository,
	loadSettings entities.SettingsLoader,
	git repositories.GitRepository,
	providers *infraRepos.ProviderRegistry,
	locateGit commands.LocateGit,
	listRemotes commands.ListRemotes,
	identifyRepo commands.IdentifyRepo,
) *SessionController {
	return &SessionController{
		auth:         auth,
		loadSettings: loadSettings,
		deps: agent.Dependencies{
			Git:          git,
			Providers:    providers,
			LocateGit:    locateGit,
			ListRemotes:  listRemotes,
			IdentifyRepo: identifyRepo,
		},
	}
}

// GetBind returns the Cobra command metadata for the session controller.
func (it *SessionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "session [path]",
		Short: "Start a session and report the repository at a path",
		Long: `Log in with the configured token, start the agent containers and print
the session, the git executable, and the repository, remotes and project type
found at the given path (default: current directory).`,
	}
}

// Execute runs one login/logout cycle.
func (it *SessionController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd, it.loadSettings)
	if err != nil {
		logger.Error(err)
		return
	}

	session, err := it.auth.Login(ctx, settings)
	if err != nil {
		logger.Errorf("Login failed: %v", err)
		return
	}

	process, err := agent.Initialize(agent.NewAgent(settings, it.deps), session)
	if err != nil {
		logger.Errorf("Failed to start the agent: %v", err)
		return
	}
	container, err := agent.InitializeSession(session)
	if err != nil {
		logger.Errorf("Failed to start the session: %v", err)
		return
	}
	defer agent.ResetSession()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}

	status := it.describe(ctx, process, container, path)
	process.Telemetry().Track("Session Started", map[string]any{
		"projectType": string(status.ProjectType),
		"hasRepo":     status.Repo != nil,
	})

	if printErr := printJSON(cmd, status); printErr != nil {
		logger.Errorf("Failed to print session status: %v", printErr)
	}
}

func (it *SessionController) describe(
	ctx context.Context,
	process *agent.ServiceContainer,
	container *agent.SessionServiceContainer,
	path string,
) SessionStatus {
	session := container.Session()
	status := SessionStatus{
		SessionID: session.ID,
		TeamID:    session.TeamID,
		ServerURL: session.ServerURL,
	}

	if location, err := container.Git().Location(ctx); err != nil {
		process.ErrorReporter().Report(err, logger.Fields{"operation": "locate git"})
	} else {
		status.Git = &location
	}

	info, err := process.UnauthenticatedScm().RepoInfo(path)
	if err != nil {
		logger.Warnf("No repository at %s: %v", path, err)
		return status
	}
	status.Repo = &info
	container.RepositoryMappings().Add(info.Remotes...)

	result, err := container.RepoIdentifier().Execute(ctx, entities.ReposScm{
		Path:    info.RepoPath,
		Remotes: info.Remotes,
	})
	if err != nil {
		process.ErrorReporter().Report(err, logger.Fields{"operation": "identify repo"})
		result = entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}
	}
	status.ProjectType = result.ProjectType
	status.Projects = result.Projects
	return status
}

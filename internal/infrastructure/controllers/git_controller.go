package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// GitController handles the "git" subcommand.
type GitController struct {
	command      commands.LocateGit
	loadSettings entities.SettingsLoader
}

// NewGitController creates a new GitController.
func NewGitController(command commands.LocateGit, loadSettings entities.SettingsLoader) *GitController {
	return &GitController{command: command, loadSettings: loadSettings}
}

// GetBind returns the Cobra command metadata for the git controller.
func (it *GitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "git [hint]",
		Short: "Locate the git executable",
		Long: `Locate the git executable the agent would use and print its path and version.

The optional hint (or git.path from the config file) is tried first. A hint
under \\wsl$\<distro>\ runs git inside that WSL distribution.`,
	}
}

// Execute locates git and prints the result.
func (it *GitController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd, it.loadSettings)
	if err != nil {
		logger.Error(err)
		return
	}

	hint := settings.Git.Path
	if len(args) > 0 {
		hint = args[0]
	}

	location, err := it.command.Execute(ctx, hint)
	if err != nil {
		logger.Errorf("Git lookup failed: %v", err)
		return
	}
	if minimum := settings.Git.MinimumVersion; minimum != "" && !location.AtLeast(minimum) {
		logger.Warnf("Git %s is older than the supported minimum %s", location.Version, minimum)
	}

	if printErr := printJSON(cmd, location); printErr != nil {
		logger.Errorf("Failed to print git location: %v", printErr)
	}
}

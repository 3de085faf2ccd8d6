package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// RemotesController handles the "remotes" subcommand.
type RemotesController struct {
	command      commands.ListRemotes
	loadSettings entities.SettingsLoader
}

// NewRemotesController creates a new RemotesController.
func NewRemotesController(command commands.ListRemotes, loadSettings entities.SettingsLoader) *RemotesController {
	return &RemotesController{command: command, loadSettings: loadSettings}
}

// GetBind returns the Cobra command metadata for the remotes controller.
func (it *RemotesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "remotes [path]",
		Short: "List the remotes of a repository",
		Long: `List the remotes of a local repository, grouped by repository URL,
tagged with their hosting provider and ordered by importance.`,
	}
}

// AddFlags adds the remotes-specific flags to the given cobra command.
func (it *RemotesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "",
		"Remote to list first: prioritizeOrigin or prioritizeUpstream (default: upstream, then origin)")
}

// Execute lists the remotes and prints them.
func (it *RemotesController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd, it.loadSettings)
	if err != nil {
		logger.Error(err)
		return
	}
	rawStrategy, _ := cmd.Flags().GetString("strategy")
	strategy, err := entities.ParseRemoteWeightStrategy(rawStrategy)
	if err != nil {
		logger.Error(err)
		return
	}

	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	}

	remotes, err := it.command.Execute(ctx, commands.ListRemotesOptions{
		RepoPath: repoPath,
		GitHint:  settings.Git.Path,
		Strategy: strategy,
	})
	if err != nil {
		logger.Errorf("Failed to list remotes of %s: %v", repoPath, err)
		return
	}

	if printErr := printJSON(cmd, remotes); printErr != nil {
		logger.Errorf("Failed to print remotes: %v", printErr)
	}
}

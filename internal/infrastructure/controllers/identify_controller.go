package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

const maxConcurrentIdentifications = 4

// IdentifiedRepo is one line of the identify report.
type IdentifiedRepo struct {
	Path string `json:"path"`
	entities.IdentifyRepoResult
}

// IdentifyController handles the "identify" subcommand.
type IdentifyController struct {
	command commands.IdentifyRepo
}

// NewIdentifyController creates a new IdentifyController.
func NewIdentifyController(command commands.IdentifyRepo) *IdentifyController {
	return &IdentifyController{command: command}
}

// GetBind returns the Cobra command metadata for the identify controller.
func (it *IdentifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "identify [paths...]",
		Short: "Detect the project type of repositories",
		Long: `Detect whether each repository is a NodeJS, Java, .NET or .NET Framework
project. Repositories that cannot be read are reported as Unknown.`,
	}
}

// Execute identifies every path concurrently and prints the results in
// argument order.
func (it *IdentifyController) Execute(cmd *cobra.Command, args []string) {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	results := make([]IdentifiedRepo, len(paths))
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(maxConcurrentIdentifications)
	for i, path := range paths {
		group.Go(func() error {
			result, err := it.command.Execute(ctx, entities.ReposScm{Path: path})
			if err != nil {
				logger.Warnf("Failed to identify %s: %v", path, err)
				result = entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}
			}
			results[i] = IdentifiedRepo{Path: path, IdentifyRepoResult: result}
			return nil
		})
	}
	_ = group.Wait()

	if err := printJSON(cmd, results); err != nil {
		logger.Errorf("Failed to print identification results: %v", err)
	}
}

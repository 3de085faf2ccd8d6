package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// Repository runs external processes with os/exec.
type Repository struct{}

// NewShellRepository creates a new shell Repository.
func NewShellRepository() *Repository {
	return &Repository{}
}

// RunCommand runs name with args in the current directory.
func (it *Repository) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	return it.RunCommandInDir(ctx, "", name, args...)
}

// RunCommandInDir runs name with args in dir and returns the trimmed stdout.
func (it *Repository) RunCommandInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %s", name, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		cmdErr := &entities.CommandError{
			Command: name,
			Args:    args,
			Code:    -1,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.Code = exitErr.ExitCode()
		}
		return "", cmdErr
	}

	return strings.TrimSpace(stdout.String()), nil
}

// FindExecutable resolves name through PATH, falling back to name itself.
func (it *Repository) FindExecutable(name string) string {
	resolved, err := exec.LookPath(name)
	if err != nil {
		return name
	}
	return resolved
}

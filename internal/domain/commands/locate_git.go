package commands

import (
	"context"
	"errors"
	"os"
	"regexp"
	"runtime"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

const (
	defaultGitCommand = "git"
	darwinStubGit     = "/usr/bin/git"
	xcodeMissingCode  = 2
)

// ErrGitNotFound is returned when no usable git executable exists.
var ErrGitNotFound = errors.New("Unable to find git") //nolint:revive,staticcheck // message is part of the contract

// wslPattern matches UNC paths into a WSL distribution, e.g. \\wsl$\Ubuntu\usr\bin\git.
var wslPattern = regexp.MustCompile(`\\\\wsl\$\\(.+?)\\.+`)

// LocateGit is the interface for the git executable discovery command.
type LocateGit interface {
	Execute(ctx context.Context, hint string) (entities.GitLocation, error)
}

// LocateGitCommand resolves a usable git executable, following the platform
// specific fallback chain when the hint (or plain "git") does not work.
type LocateGitCommand struct {
	shell  repositories.ShellRepository
	goos   string
	getenv func(string) string
}

// NewLocateGitCommand creates a LocateGitCommand for the running platform.
func NewLocateGitCommand(shell repositories.ShellRepository) *LocateGitCommand {
	return &LocateGitCommand{
		shell:  shell,
		goos:   runtime.GOOS,
		getenv: os.Getenv,
	}
}

// Execute returns the location of git, trying the hint first.
func (it *LocateGitCommand) Execute(ctx context.Context, hint string) (entities.GitLocation, error) {
	candidate := hint
	if candidate == "" {
		candidate = defaultGitCommand
	}

	location, err := it.findSpecificGit(ctx, candidate)
	if err == nil {
		return location, nil
	}
	logger.Debugf("git not usable at %q: %v", candidate, err)

	switch it.goos {
	case "darwin":
		location, err = it.findGitDarwin(ctx)
	case "windows":
		location, err = it.findGitWindows(ctx)
	default:
		return entities.GitLocation{}, ErrGitNotFound
	}
	if err != nil {
		logger.Debugf("git discovery failed on %s: %v", it.goos, err)
		return entities.GitLocation{}, ErrGitNotFound
	}
	return location, nil
}

// findSpecificGit validates a single candidate by running `--version`.
func (it *LocateGitCommand) findSpecificGit(ctx context.Context, path string) (entities.GitLocation, error) {
	if match := wslPattern.FindStringSubmatch(path); match != nil {
		distro := match[1]
		wsl := it.shell.FindExecutable("wsl")
		version, err := it.shell.RunCommand(ctx, wsl, "-d", distro, "git", "--version")
		if err != nil {
			return entities.GitLocation{}, err
		}
		return entities.GitLocation{
			Path:      wsl,
			Version:   entities.ParseGitVersion(strings.TrimSpace(version)),
			IsWsl:     true,
			WslDistro: distro,
		}, nil
	}

	version, err := it.shell.RunCommand(ctx, path, "--version")
	if err != nil {
		return entities.GitLocation{}, err
	}
	if path == defaultGitCommand {
		// resolve once so later commands skip the PATH search
		path = it.shell.FindExecutable(defaultGitCommand)
	}

	return entities.GitLocation{
		Path:    path,
		Version: entities.ParseGitVersion(strings.TrimSpace(version)),
	}, nil
}

// findGitDarwin asks `which` and guards against the Xcode shim at /usr/bin/git.
func (it *LocateGitCommand) findGitDarwin(ctx context.Context) (entities.GitLocation, error) {
	path, err := it.shell.RunCommand(ctx, "which", defaultGitCommand)
	if err != nil {
		return entities.GitLocation{}, ErrGitNotFound
	}
	path = strings.TrimSpace(path)

	if path != darwinStubGit {
		return it.findSpecificGit(ctx, path)
	}

	if _, xcodeErr := it.shell.RunCommand(ctx, "xcode-select", "-p"); xcodeErr != nil {
		var cmdErr *entities.CommandError
		if errors.As(xcodeErr, &cmdErr) && cmdErr.Code == xcodeMissingCode {
			// the shim would only prompt to install the command line tools
			return entities.GitLocation{}, ErrGitNotFound
		}
	}
	return it.findSpecificGit(ctx, path)
}

// findGitWindows probes the standard Git for Windows install locations in order.
func (it *LocateGitCommand) findGitWindows(ctx context.Context) (entities.GitLocation, error) {
	for _, envVar := range []string{"ProgramW6432", "ProgramFiles(x86)", "ProgramFiles"} {
		base := it.getenv(envVar)
		if base == "" {
			continue
		}
		candidate := windowsJoin(base, "Git", "cmd", "git.exe")
		location, err := it.findSpecificGit(ctx, candidate)
		if err == nil {
			return location, nil
		}
		logger.Debugf("git not usable at %q: %v", candidate, err)
	}
	return it.findSpecificGit(ctx, defaultGitCommand)
}

// windowsJoin joins path elements with backslashes regardless of the host OS.
func windowsJoin(base string, elems ...string) string {
	return strings.Join(append([]string{strings.TrimRight(base, `\/`)}, elems...), `\`)
}

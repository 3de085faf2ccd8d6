package commands

import (
	"io/fs"

	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// NewLocateGitCommandForPlatform builds a LocateGitCommand for a fixed OS and environment.
func NewLocateGitCommandForPlatform(
	shell repositories.ShellRepository,
	goos string,
	env map[string]string,
) *LocateGitCommand {
	return &LocateGitCommand{
		shell:  shell,
		goos:   goos,
		getenv: func(key string) string { return env[key] },
	}
}

// NewIdentifyRepoCommandWithFS builds an IdentifyRepoCommand that ignores the
// repository path and reads from fsys instead.
func NewIdentifyRepoCommandWithFS(fsys fs.FS) *IdentifyRepoCommand {
	return &IdentifyRepoCommand{openFS: func(string) fs.FS { return fsys }}
}

// FindFiles exports findFiles for testing.
var FindFiles = findFiles //nolint:gochecknoglobals // test export

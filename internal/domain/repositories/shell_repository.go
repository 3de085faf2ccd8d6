package repositories

import "context"

// ShellRepository abstracts external process invocation.
type ShellRepository interface {
	// RunCommand runs name with args and returns the trimmed stdout.
	// A non-zero exit is reported as *entities.CommandError carrying the code.
	RunCommand(ctx context.Context, name string, args ...string) (string, error)

	// RunCommandInDir is RunCommand with the working directory set to dir.
	RunCommandInDir(ctx context.Context, dir, name string, args ...string) (string, error)

	// FindExecutable resolves name through PATH, returning name itself when it
	// cannot be resolved.
	FindExecutable(name string) string
}

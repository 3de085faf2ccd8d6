//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// StubCommandResponse is the scripted result of one command line.
type StubCommandResponse struct {
	Output string
	Err    error
}

// StubCommandCall records a command invocation.
type StubCommandCall struct {
	Dir  string
	Name string
	Args []string
}

// StubShellRepository is a stub implementation of repositories.ShellRepository.
// Command lines without a scripted response fail with exit code 127.
type StubShellRepository struct {
	mu          sync.Mutex
	Responses   map[string]StubCommandResponse
	Executables map[string]string
	Calls       []StubCommandCall
}

var _ repositories.ShellRepository = (*StubShellRepository)(nil)

// NewStubShellRepository creates an empty StubShellRepository.
func NewStubShellRepository() *StubShellRepository {
	return &StubShellRepository{
		Responses:   make(map[string]StubCommandResponse),
		Executables: make(map[string]string),
	}
}

// WithOutput scripts a successful command line such as "git --version".
func (s *StubShellRepository) WithOutput(cmdline, output string) *StubShellRepository {
	s.Responses[cmdline] = StubCommandResponse{Output: output}
	return s
}

// WithExitCode scripts a command line that exits with code.
func (s *StubShellRepository) WithExitCode(cmdline string, code int) *StubShellRepository {
	fields := strings.Fields(cmdline)
	s.Responses[cmdline] = StubCommandResponse{Err: &entities.CommandError{
		Command: fields[0],
		Args:    fields[1:],
		Code:    code,
	}}
	return s
}

// WithExecutable scripts the PATH resolution of name.
func (s *StubShellRepository) WithExecutable(name, resolved string) *StubShellRepository {
	s.Executables[name] = resolved
	return s
}

func (s *StubShellRepository) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	return s.RunCommandInDir(ctx, "", name, args...)
}

func (s *StubShellRepository) RunCommandInDir(
	_ context.Context,
	dir, name string,
	args ...string,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, StubCommandCall{Dir: dir, Name: name, Args: args})
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	response, ok := s.Responses[cmdline]
	if !ok {
		return "", &entities.CommandError{
			Command: name,
			Args:    args,
			Code:    127, //nolint:mnd // command not found
			Err:     fmt.Errorf("no scripted response for %q", cmdline),
		}
	}
	return response.Output, response.Err
}

func (s *StubShellRepository) FindExecutable(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resolved, ok := s.Executables[name]; ok {
		return resolved
	}
	return name
}

// CommandLines returns every invoked command line in order.
func (s *StubShellRepository) CommandLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, strings.TrimSpace(call.Name+" "+strings.Join(call.Args, " ")))
	}
	return lines
}

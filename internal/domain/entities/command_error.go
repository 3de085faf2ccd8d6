package entities

import (
	"fmt"
	"strings"
)

// CommandError is returned when an external process exits with a non-zero code.
type CommandError struct {
	Command string
	Args    []string
	Code    int
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", cmdline, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", cmdline, e.Code)
}

func (e *CommandError) Unwrap() error { return e.Err }

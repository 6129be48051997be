package collector

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const defaultCommandTimeout = 5 * time.Second

// CommandExecutor runs an external command and returns its trimmed stdout.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

type execCommandExecutor struct {
	timeout time.Duration
}

// NewCommandExecutor returns an executor that kills commands running longer
// than timeout. A zero timeout selects the default.
func NewCommandExecutor(timeout time.Duration) CommandExecutor {
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	return &execCommandExecutor{timeout: timeout}
}

func (e *execCommandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", &CommandError{Command: name, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

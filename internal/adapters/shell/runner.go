package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Runner executes command strings with the local POSIX shell.
// It lets the remote transport target the local machine.
type Runner struct {
	Shell   string
	Timeout time.Duration
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a runner using /bin/sh
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{Shell: "/bin/sh", Timeout: timeout}
}

// Run executes command with "sh -c" and collects its output
func (r *Runner) Run(ctx context.Context, command string) (domain.CommandResult, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	result := domain.CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("failed to run command: %w", err)
	}

	logging.Logger.Debug("Local command finished", "exit_code", result.ExitCode, "stderr_len", stderr.Len())
	return result, nil
}

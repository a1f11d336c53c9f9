package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	gossh "golang.org/x/crypto/ssh"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
)

// ErrCommandTimeout is returned when a command outlives its timeout
var ErrCommandTimeout = errors.New("command timed out")

// Execute runs command on its own exec channel and waits for it to finish.
// The channel is closed when timeout elapses or ctx is done; a timeout of zero
// means no limit. ExitCode is -1 when the server sent no exit status.
func Execute(ctx context.Context, client *gossh.Client, command string, timeout time.Duration) (domain.CommandResult, error) {
	sess, err := client.NewSession()
	if err != nil {
		return domain.CommandResult{}, fmt.Errorf("failed to open exec channel: %w", err)
	}
	defer sess.Close()

	var stdout, stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	var timedOut atomic.Bool
	if timeout > 0 {
		timer := time.AfterFunc(timeout, func() {
			timedOut.Store(true)
			sess.Close()
		})
		defer timer.Stop()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			sess.Close()
		case <-done:
		}
	}()

	start := time.Now()
	err = sess.Run(command)
	result := domain.CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *gossh.ExitError
	var missingErr *gossh.ExitMissingError
	switch {
	case timedOut.Load():
		return result, fmt.Errorf("%w after %s", ErrCommandTimeout, timeout)
	case ctx.Err() != nil:
		return result, fmt.Errorf("command canceled: %w", ctx.Err())
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitStatus()
	case errors.As(err, &missingErr):
		result.ExitCode = -1
	default:
		return result, fmt.Errorf("failed to run command: %w", err)
	}

	logging.Logger.Debug("Remote command finished",
		"exit_code", result.ExitCode,
		"duration", time.Since(start),
		"stdout_len", stdout.Len(),
		"stderr_len", stderr.Len())
	return result, nil
}

// ExecuteChecked runs command and returns stdout, failing only on a non-zero exit
// that came with stderr output. See domain.CommandResult.Checked for the caveat.
func ExecuteChecked(ctx context.Context, client *gossh.Client, command string, timeout time.Duration) (string, error) {
	res, err := Execute(ctx, client, command, timeout)
	if err != nil {
		return "", err
	}
	return res.Checked()
}

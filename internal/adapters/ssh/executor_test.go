package ssh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/domain"
)

func TestExecute(t *testing.T) {
	pool, _, server := passwordPool(t)
	client, err := pool.Acquire(context.Background(), server)
	require.NoError(t, err)

	tests := []struct {
		name     string
		command  string
		stdout   string
		stderr   string
		exitCode int
	}{
		{"stdout", "echo out", "out\n", "", 0},
		{"stderr and exit", "echo err >&2; exit 4", "", "err\n", 4},
		{"silent failure", "exit 1", "", "", 1},
		{"quoted argument", `printf %s 'a'\''b'`, "a'b", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Execute(context.Background(), client, tt.command, 5*time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, res.Stdout)
			assert.Equal(t, tt.stderr, res.Stderr)
			assert.Equal(t, tt.exitCode, res.ExitCode)
		})
	}
}

func TestExecuteChecked(t *testing.T) {
	pool, _, server := passwordPool(t)
	client, err := pool.Acquire(context.Background(), server)
	require.NoError(t, err)

	out, err := ExecuteChecked(context.Background(), client, "echo partial; exit 2", 5*time.Second)
	require.NoError(t, err, "non-zero exit without stderr is tolerated")
	assert.Equal(t, "partial\n", out)

	_, err = ExecuteChecked(context.Background(), client, "echo 'boom happened' >&2; exit 2", 5*time.Second)
	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 2, cmdErr.ExitCode)
	assert.Equal(t, "boom happened", cmdErr.Stderr)
}

func TestExecute_Timeout(t *testing.T) {
	pool, _, server := passwordPool(t)
	client, err := pool.Acquire(context.Background(), server)
	require.NoError(t, err)

	_, err = Execute(context.Background(), client, "sleep 5", 100*time.Millisecond)
	assert.ErrorIs(t, err, ErrCommandTimeout)

	res, err := Execute(context.Background(), client, "echo still", 5*time.Second)
	require.NoError(t, err, "session survives a timed out channel")
	assert.Equal(t, "still\n", res.Stdout)
}

func TestExecute_ContextCanceled(t *testing.T) {
	pool, _, server := passwordPool(t)
	client, err := pool.Acquire(context.Background(), server)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = Execute(ctx, client, "sleep 5", 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 4*time.Second)

	res, err := Execute(context.Background(), client, "echo still", 5*time.Second)
	require.NoError(t, err, "session survives a canceled channel")
	assert.Equal(t, "still\n", res.Stdout)
}

func TestRunner_ExecFailureDropsSession(t *testing.T) {
	pool, srv, server := passwordPool(t)
	runner := pool.RunnerFor(server)

	_, err := runner.Run(context.Background(), "true")
	require.NoError(t, err)

	client, err := pool.Acquire(context.Background(), server)
	require.NoError(t, err)
	pool.invalidate(server.ID, client)
	assert.Equal(t, domain.StateDisconnected, pool.Status(server.ID).State)

	_, err = runner.Run(context.Background(), "true")
	require.NoError(t, err)
	assert.Equal(t, 2, srv.Connections())
}

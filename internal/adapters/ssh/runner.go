package ssh

import (
	"context"
	"errors"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Runner runs commands on one server through the pool
type Runner struct {
	pool   *Pool
	server domain.ServerProfile
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run acquires the server's session and executes command on it.
// A failure to open or run the exec channel drops the session, unless it was
// a timeout or ctx ending.
func (r *Runner) Run(ctx context.Context, command string) (domain.CommandResult, error) {
	client, err := r.pool.Acquire(ctx, r.server)
	if err != nil {
		return domain.CommandResult{}, err
	}

	res, err := Execute(ctx, client, command, r.server.CommandTimeout())
	if err != nil {
		if !errors.Is(err, ErrCommandTimeout) && ctx.Err() == nil {
			r.pool.invalidate(r.server.ID, client)
		}
		return res, &domain.ConnectionError{Server: r.server.ID, Op: "exec", Err: err}
	}
	return res, nil
}

package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// SessionPool manages pooled SSH sessions keyed by server id
type SessionPool interface {
	CleanupIdle() int
	Disconnect(id string)
	Status(id string) domain.ConnectionStatus
	TestConnection(ctx context.Context, server domain.ServerProfile) domain.ConnectionStatus
}

// RunnerFactory yields a command runner bound to one server
type RunnerFactory interface {
	RunnerFor(server domain.ServerProfile) CommandRunner
}

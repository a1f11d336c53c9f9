package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// CommandRunner runs one shell command string and collects its output
type CommandRunner interface {
	Run(ctx context.Context, command string) (domain.CommandResult, error)
}

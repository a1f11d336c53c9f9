package cmd

import (
	"context"
	"path/filepath"

	"github.com/skillpilot/skillpilot/internal/paths"
	"github.com/skillpilot/skillpilot/internal/services"
)

// TargetFlags select the machine a command operates on
type TargetFlags struct {
	Loopback bool   `help:"Drive the local machine through the SSH shell protocol" hidden:""`
	Server   string `help:"Server id (default: local machine)" short:"s"`
}

func (t TargetFlags) environment(ctx context.Context, container *Container) (*services.Environment, error) {
	return container.Environment(ctx, t.Server, t.Loopback)
}

// LinkTargetFlags also select the skills directory: user-level, or a project's
type LinkTargetFlags struct {
	TargetFlags
	Project string `help:"Project path; links live in <project>/.claude/skills" short:"p"`
}

// projectKey normalizes a local project path; remote paths are kept as typed
func projectKey(env *services.Environment, path string) string {
	if env.Remote {
		return path
	}
	abs, err := filepath.Abs(paths.ExpandPath(path))
	if err != nil {
		return paths.ExpandPath(path)
	}
	return abs
}

package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// SkillSource reads the raw material for skill discovery from a repository
type SkillSource interface {
	// ResolveRoot turns repo into the absolute path the other methods report paths under
	ResolveRoot(ctx context.Context, repo string) (string, error)

	// SkillFiles returns every SKILL.md under repo outside the excluded directories
	SkillFiles(ctx context.Context, repo string) ([]domain.SkillFile, error)

	// Submodules maps submodule names and paths to absolute paths; empty when there are none
	Submodules(ctx context.Context, repo string) (map[string]string, error)
}

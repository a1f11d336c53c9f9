package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// ServerRepository persists server profiles
type ServerRepository interface {
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.ServerProfile, error)
	List(ctx context.Context) ([]domain.ServerProfile, error)
	Save(ctx context.Context, server domain.ServerProfile) error
}

// ProfileRepository persists skill profiles
type ProfileRepository interface {
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}

// ProjectRepository persists project configs
type ProjectRepository interface {
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.ProjectConfig, error)
	Save(ctx context.Context, project domain.ProjectConfig) error
}

// ConfigStore is the profile and project store of one machine
type ConfigStore interface {
	ProfileRepository() ProfileRepository
	ProjectRepository() ProjectRepository
}

package remotefs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillpilot/skillpilot/internal/adapters/shellproto"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// ConfigStore keeps profiles and projects in a server's remote config dir
type ConfigStore struct {
	configDir string
	runner    ports.CommandRunner
}

var _ ports.RemoteConfigStore = (*ConfigStore)(nil)

// NewConfigStore creates a store rooted at configDir on the runner's machine
func NewConfigStore(runner ports.CommandRunner, configDir string) *ConfigStore {
	return &ConfigStore{configDir: configDir, runner: runner}
}

// Init creates the config layout and the skills dir if they are missing
func (s *ConfigStore) Init(ctx context.Context, skillsDir string) error {
	if _, err := s.exec(ctx, shellproto.InitConfigCommand(s.configDir, skillsDir)); err != nil {
		return fmt.Errorf("failed to initialize remote config: %w", err)
	}
	return nil
}

func (s *ConfigStore) ProfileRepository() ports.ProfileRepository {
	return &profileRepository{store: s}
}

func (s *ConfigStore) ProjectRepository() ports.ProjectRepository {
	return &projectRepository{store: s}
}

func (s *ConfigStore) exec(ctx context.Context, command string) (string, error) {
	res, err := s.runner.Run(ctx, command)
	if err != nil {
		return "", err
	}
	return res.Checked()
}

func (s *ConfigStore) profilesDir() string {
	return shellproto.SlotPath(s.configDir, "profiles")
}

func (s *ConfigStore) projectsFile() string {
	return shellproto.SlotPath(s.configDir, "projects.json")
}

type profileRepository struct {
	store *ConfigStore
}

// List reads every profile file; unparsable files are skipped
func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	out, err := r.store.exec(ctx, shellproto.ProfileDumpCommand(r.store.configDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read remote profiles: %w", err)
	}

	profiles := []domain.Profile{}
	for _, block := range shellproto.SplitBlocks(out, shellproto.ProfileSeparator) {
		var p domain.Profile
		if err := json.Unmarshal([]byte(block), &p); err != nil {
			logging.Logger.Warn("Skipping malformed remote profile", "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *profileRepository) Save(ctx context.Context, profile domain.Profile) error {
	if err := domain.ValidateLinkName(profile.ID); err != nil {
		return fmt.Errorf("invalid profile id %q: %w", profile.ID, err)
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	write, err := shellproto.HeredocWriteCommand(shellproto.SlotPath(r.store.profilesDir(), profile.ID+".json"), string(data))
	if err != nil {
		return err
	}
	if _, err := r.store.exec(ctx, shellproto.Batch(shellproto.MkdirCommand(r.store.profilesDir()), write)); err != nil {
		return fmt.Errorf("failed to save remote profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateLinkName(id); err != nil {
		return fmt.Errorf("invalid profile id %q: %w", id, err)
	}
	if _, err := r.store.exec(ctx, shellproto.RemoveCommand(shellproto.SlotPath(r.store.profilesDir(), id+".json"))); err != nil {
		return fmt.Errorf("failed to delete remote profile: %w", err)
	}
	return nil
}

type projectRepository struct {
	store *ConfigStore
}

func (r *projectRepository) List(ctx context.Context) ([]domain.ProjectConfig, error) {
	out, err := r.store.exec(ctx, shellproto.ReadWithDefaultCommand(r.store.projectsFile(), "[]"))
	if err != nil {
		return nil, fmt.Errorf("failed to read remote projects: %w", err)
	}
	projects := []domain.ProjectConfig{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &projects); err != nil {
		return nil, fmt.Errorf("remote projects.json: %w: %v", domain.ErrMalformed, err)
	}
	return projects, nil
}

func (r *projectRepository) Save(ctx context.Context, project domain.ProjectConfig) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range projects {
		if projects[i].ID == project.ID {
			projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, project)
	}
	return r.write(ctx, projects)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.write(ctx, kept)
}

func (r *projectRepository) write(ctx context.Context, projects []domain.ProjectConfig) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	write, err := shellproto.HeredocWriteCommand(r.store.projectsFile(), string(data))
	if err != nil {
		return err
	}
	if _, err := r.store.exec(ctx, shellproto.Batch(shellproto.MkdirCommand(r.store.configDir), write)); err != nil {
		return fmt.Errorf("failed to save remote projects: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// ServerRepository stores server profiles as a JSON array in remotes.json
type ServerRepository struct {
	mu   sync.Mutex
	path string
}

var _ ports.ServerRepository = (*ServerRepository)(nil)

func NewServerRepository(path string) *ServerRepository {
	return &ServerRepository{path: path}
}

func (r *ServerRepository) load() ([]domain.ServerProfile, error) {
	var servers []domain.ServerProfile
	if _, err := readJSON(r.path, &servers); err != nil {
		return nil, err
	}
	for i := range servers {
		servers[i].ApplyDefaults()
	}
	return servers, nil
}

func (r *ServerRepository) List(ctx context.Context) ([]domain.ServerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *ServerRepository) Get(ctx context.Context, id string) (*domain.ServerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	servers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range servers {
		if servers[i].ID == id {
			return &servers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrServerNotFound, id)
}

// Save inserts or replaces the server with the same id
func (r *ServerRepository) Save(ctx context.Context, server domain.ServerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	servers, err := r.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range servers {
		if servers[i].ID == server.ID {
			servers[i] = server
			replaced = true
			break
		}
	}
	if !replaced {
		servers = append(servers, server)
	}
	return writeJSON(r.path, servers)
}

func (r *ServerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	servers, err := r.load()
	if err != nil {
		return err
	}
	kept := servers[:0]
	for _, s := range servers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(servers) {
		return fmt.Errorf("%w: %s", domain.ErrServerNotFound, id)
	}
	return writeJSON(r.path, kept)
}

// ProjectRepository stores project configs as a JSON array in projects.json
type ProjectRepository struct {
	mu   sync.Mutex
	path string
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(path string) *ProjectRepository {
	return &ProjectRepository{path: path}
}

func (r *ProjectRepository) load() ([]domain.ProjectConfig, error) {
	var projects []domain.ProjectConfig
	if _, err := readJSON(r.path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.ProjectConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *ProjectRepository) Save(ctx context.Context, project domain.ProjectConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
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
	return writeJSON(r.path, projects)
}

// Delete removes the project; a missing id is not an error
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return nil
	}
	return writeJSON(r.path, kept)
}

// ProfileRepository stores one JSON file per profile under a directory
type ProfileRepository struct {
	dir string
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(dir string) *ProfileRepository {
	return &ProfileRepository{dir: dir}
}

func (r *ProfileRepository) file(id string) (string, error) {
	if err := domain.ValidateLinkName(id); err != nil {
		return "", fmt.Errorf("invalid profile id %q: %w", id, err)
	}
	return filepath.Join(r.dir, id+".json"), nil
}

// List returns every readable profile sorted by name. Malformed files are skipped.
func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	var profiles []domain.Profile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		var p domain.Profile
		if _, err := readJSON(filepath.Join(r.dir, e.Name()), &p); err != nil {
			logging.Logger.Warn("Skipping unreadable profile", "file", e.Name(), "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].Name) < strings.ToLower(profiles[j].Name)
	})
	return profiles, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	path, err := r.file(profile.ID)
	if err != nil {
		return err
	}
	return writeJSON(path, profile)
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	path, err := r.file(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// ConfigStore is the local machine's profile and project store
type ConfigStore struct {
	profiles *ProfileRepository
	projects *ProjectRepository
}

var _ ports.ConfigStore = (*ConfigStore)(nil)

// NewConfigStore roots profiles/ and projects.json under home
func NewConfigStore(home string) *ConfigStore {
	return &ConfigStore{
		profiles: NewProfileRepository(filepath.Join(home, "profiles")),
		projects: NewProjectRepository(filepath.Join(home, "projects.json")),
	}
}

func (s *ConfigStore) ProfileRepository() ports.ProfileRepository { return s.profiles }
func (s *ConfigStore) ProjectRepository() ports.ProjectRepository { return s.projects }

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// ProfileService manages profiles and projects of one config store and resolves them
// into desired link sets
type ProfileService struct {
	store ports.ConfigStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(store ports.ConfigStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.store.ProfileRepository().List(ctx)
}

// GetProfile finds a profile by id, or by case-insensitive name
func (s *ProfileService) GetProfile(ctx context.Context, idOrName string) (*domain.Profile, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == idOrName {
			return &profiles[i], nil
		}
	}
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, idOrName) {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, idOrName)
}

// SaveProfile stores profile, assigning a new id when it has none
func (s *ProfileService) SaveProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.SkillIDs == nil {
		profile.SkillIDs = []string{}
	}
	if err := s.store.ProfileRepository().Save(ctx, profile); err != nil {
		logging.Logger.Error("Failed to save profile", "profile", profile.ID, "error", err)
		return nil, err
	}
	logging.Logger.Info("Profile saved", "profile", profile.ID, "name", profile.Name)
	return &profile, nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.store.ProfileRepository().Delete(ctx, id); err != nil {
		return err
	}
	logging.Logger.Info("Profile deleted", "profile", id)
	return nil
}

func (s *ProfileService) ListProjects(ctx context.Context) ([]domain.ProjectConfig, error) {
	return s.store.ProjectRepository().List(ctx)
}

// GetProject finds a project by id, path or case-insensitive name
func (s *ProfileService) GetProject(ctx context.Context, key string) (*domain.ProjectConfig, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == key || projects[i].Path == key {
			return &projects[i], nil
		}
	}
	for i := range projects {
		if strings.EqualFold(projects[i].Name, key) {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, key)
}

// SaveProject stores project, assigning a new id when it has none
func (s *ProfileService) SaveProject(ctx context.Context, project domain.ProjectConfig) (*domain.ProjectConfig, error) {
	if strings.TrimSpace(project.Path) == "" {
		return nil, fmt.Errorf("project path is required")
	}
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.ProfileIDs == nil {
		project.ProfileIDs = []string{}
	}
	if project.ExtraSkillIDs == nil {
		project.ExtraSkillIDs = []string{}
	}
	if err := s.store.ProjectRepository().Save(ctx, project); err != nil {
		logging.Logger.Error("Failed to save project", "project", project.ID, "error", err)
		return nil, err
	}
	logging.Logger.Info("Project saved", "project", project.ID, "path", project.Path)
	return &project, nil
}

func (s *ProfileService) DeleteProject(ctx context.Context, id string) error {
	if err := s.store.ProjectRepository().Delete(ctx, id); err != nil {
		return err
	}
	logging.Logger.Info("Project deleted", "project", id)
	return nil
}

// ResolveProfile returns the desired link set of one profile against catalog
func (s *ProfileService) ResolveProfile(ctx context.Context, idOrName string, catalog []domain.Skill) (*domain.Profile, domain.DesiredLinkSet, error) {
	profile, err := s.GetProfile(ctx, idOrName)
	if err != nil {
		return nil, nil, err
	}
	skills := domain.ResolveSkills(catalog, profile.SkillIDs)
	logUnresolved(profile.SkillIDs, skills, "profile", profile.ID)
	return profile, domain.DesiredFromSkills(skills), nil
}

// ResolveProject returns the desired link set of a project: skills of its profiles
// in order, then its extra skills
func (s *ProfileService) ResolveProject(ctx context.Context, key string, catalog []domain.Skill) (*domain.ProjectConfig, domain.DesiredLinkSet, error) {
	project, err := s.GetProject(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := domain.ProjectSkillIDs(*project, profiles)
	skills := domain.ResolveSkills(catalog, ids)
	logUnresolved(ids, skills, "project", project.ID)
	return project, domain.DesiredFromSkills(skills), nil
}

func logUnresolved(requested []string, resolved []domain.Skill, kind, id string) {
	known := make(map[string]bool, len(resolved)*2)
	for _, s := range resolved {
		known[s.ID] = true
		known[s.Name] = true
	}
	for _, want := range requested {
		if !known[want] {
			logging.Logger.Warn("Skill not resolved against catalog", kind, id, "skill", want)
		}
	}
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

func newProfileService(t *testing.T) (*ProfileService, *portsmocks.MockProfileRepository, *portsmocks.MockProjectRepository) {
	store := portsmocks.NewMockConfigStore(t)
	profiles := portsmocks.NewMockProfileRepository(t)
	projects := portsmocks.NewMockProjectRepository(t)
	store.EXPECT().ProfileRepository().Return(profiles).Maybe()
	store.EXPECT().ProjectRepository().Return(projects).Maybe()
	return NewProfileService(store), profiles, projects
}

var testCatalog = []domain.Skill{
	{ID: "backend/go", Name: "go", Path: "/repo/backend/go"},
	{ID: "backend/sql", Name: "sql", Path: "/repo/backend/sql"},
	{ID: "tools/pdf", Name: "pdf", Path: "/repo/tools/pdf"},
}

func TestResolveProfile(t *testing.T) {
	service, profiles, _ := newProfileService(t)
	profiles.EXPECT().List(mock.Anything).Return([]domain.Profile{
		{ID: "p1", Name: "Backend", SkillIDs: []string{"go", "backend/sql", "missing"}},
	}, nil)

	profile, desired, err := service.ResolveProfile(context.Background(), "backend", testCatalog)

	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, domain.DesiredLinkSet{"go": "/repo/backend/go", "sql": "/repo/backend/sql"}, desired)
}

func TestResolveProfile_NotFound(t *testing.T) {
	service, profiles, _ := newProfileService(t)
	profiles.EXPECT().List(mock.Anything).Return(nil, nil)

	_, _, err := service.ResolveProfile(context.Background(), "nope", testCatalog)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolveProject(t *testing.T) {
	service, profiles, projects := newProfileService(t)
	projects.EXPECT().List(mock.Anything).Return([]domain.ProjectConfig{
		{ID: "x", Name: "api", Path: "/src/api", ProfileIDs: []string{"p1"}, ExtraSkillIDs: []string{"pdf", "go"}},
	}, nil)
	profiles.EXPECT().List(mock.Anything).Return([]domain.Profile{
		{ID: "p1", Name: "Backend", SkillIDs: []string{"go"}},
	}, nil)

	project, desired, err := service.ResolveProject(context.Background(), "/src/api", testCatalog)

	require.NoError(t, err)
	assert.Equal(t, "x", project.ID)
	assert.Equal(t, domain.DesiredLinkSet{"go": "/repo/backend/go", "pdf": "/repo/tools/pdf"}, desired)
}

func TestSaveProfile_AssignsID(t *testing.T) {
	service, profiles, _ := newProfileService(t)
	profiles.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p domain.Profile) bool {
		return p.ID != "" && p.Name == "web" && p.SkillIDs != nil
	})).Return(nil)

	saved, err := service.SaveProfile(context.Background(), domain.Profile{Name: "web"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	_, err = service.SaveProfile(context.Background(), domain.Profile{Name: "  "})
	assert.Error(t, err)
}

func TestSaveProject_RequiresPath(t *testing.T) {
	service, _, projects := newProfileService(t)
	projects.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p domain.ProjectConfig) bool {
		return p.ID == "keep" && p.ProfileIDs != nil && p.ExtraSkillIDs != nil
	})).Return(nil)

	_, err := service.SaveProject(context.Background(), domain.ProjectConfig{Name: "api"})
	assert.Error(t, err)

	saved, err := service.SaveProject(context.Background(), domain.ProjectConfig{ID: "keep", Path: "/src/api"})
	require.NoError(t, err)
	assert.Equal(t, "keep", saved.ID)
}

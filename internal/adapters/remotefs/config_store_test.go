package remotefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/adapters/shell"
	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

func newShellStore(t *testing.T) (*ConfigStore, string) {
	t.Helper()
	configDir := filepath.Join(t.TempDir(), "config")
	return NewConfigStore(shell.NewRunner(10*time.Second), configDir), configDir
}

func TestConfigStore_Init(t *testing.T) {
	store, configDir := newShellStore(t)
	skillsDir := filepath.Join(t.TempDir(), "skills")

	require.NoError(t, store.Init(context.Background(), skillsDir))

	assert.DirExists(t, filepath.Join(configDir, "profiles"))
	assert.DirExists(t, skillsDir)
	data, err := os.ReadFile(filepath.Join(configDir, "projects.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	require.NoError(t, os.WriteFile(filepath.Join(configDir, "projects.json"), []byte(`[{"id":"p"}]`), 0644))
	require.NoError(t, store.Init(context.Background(), skillsDir))
	data, err = os.ReadFile(filepath.Join(configDir, "projects.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p"}]`, string(data), "existing projects kept")
}

func TestConfigStore_Profiles(t *testing.T) {
	store, configDir := newShellStore(t)
	repo := store.ProfileRepository()
	ctx := context.Background()

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	p := domain.Profile{ID: "frontend", Name: "Frontend's kit", SkillIDs: []string{"a", "b"}, Color: "#ff0"}
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Save(ctx, domain.Profile{ID: "backend", Name: "Backend"}))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "profiles", "broken.json"), []byte("{not json"), 0644))

	profiles, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "backend", profiles[0].ID)
	assert.Equal(t, p, profiles[1])

	require.NoError(t, repo.Delete(ctx, "backend"))
	profiles, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	assert.Error(t, repo.Save(ctx, domain.Profile{ID: "../evil"}))
}

func TestConfigStore_Projects(t *testing.T) {
	store, _ := newShellStore(t)
	repo := store.ProjectRepository()
	ctx := context.Background()

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	require.NoError(t, repo.Save(ctx, domain.ProjectConfig{ID: "p1", Name: "One", Path: "/w/one"}))
	require.NoError(t, repo.Save(ctx, domain.ProjectConfig{ID: "p2", Name: "Two", Path: "/w/two"}))
	require.NoError(t, repo.Save(ctx, domain.ProjectConfig{ID: "p1", Name: "One renamed", Path: "/w/one"}))

	projects, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "One renamed", projects[0].Name)

	require.NoError(t, repo.Delete(ctx, "p1"))
	projects, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p2", projects[0].ID)
}

func TestConfigStore_MalformedProjects(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "cat '/c/projects.json' 2>/dev/null || echo '[]'").
		Return(domain.CommandResult{Stdout: "<html>"}, nil)

	_, err := NewConfigStore(runner, "/c").ProjectRepository().List(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

package remotefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/adapters/shell"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSkillSource_ThroughShell(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "alpha", "SKILL.md"), "---\nname: alpha\n---\n# Alpha")
	writeFile(t, filepath.Join(repo, "node_modules", "x", "SKILL.md"), "ignored")
	writeFile(t, filepath.Join(repo, ".git", "y", "SKILL.md"), "ignored")
	writeFile(t, filepath.Join(repo, ".gitmodules"), "[submodule \"vendor\"]\n\tpath = vendor/skills\n")

	src := NewSkillSource(shell.NewRunner(10 * time.Second))

	files, err := src.SkillFiles(context.Background(), repo)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(repo, "alpha", "SKILL.md"), files[0].Path)
	assert.Equal(t, "---\nname: alpha\n---\n# Alpha", files[0].Content)

	modules, err := src.Submodules(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, "vendor/skills"), modules["vendor"])
}

func TestSkillSource_MissingRepo(t *testing.T) {
	src := NewSkillSource(shell.NewRunner(10 * time.Second))

	files, err := src.SkillFiles(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)

	modules, err := src.Submodules(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestFiles_ListAndRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "body")
	writeFile(t, filepath.Join(dir, "scripts", "run.sh"), "echo")
	writeFile(t, filepath.Join(dir, ".hidden"), "x")

	f := NewFiles(shell.NewRunner(10 * time.Second))

	entries, err := f.List(context.Background(), dir, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "README.md", entries[0].Name)
	assert.Equal(t, "scripts/run.sh", entries[1].Name)

	sub, err := f.List(context.Background(), dir, "scripts")
	require.NoError(t, err)
	require.Len(t, sub, 1)
	assert.Equal(t, "run.sh", sub[0].Name)

	content, err := f.Read(context.Background(), filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "body", content)

	_, err = f.Read(context.Background(), filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestSkillSource_ResolveRoot(t *testing.T) {
	t.Setenv("HOME", "/home/dev")
	src := NewSkillSource(shell.NewRunner(10 * time.Second))

	root, err := src.ResolveRoot(context.Background(), "~/skills/")
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/skills", root)

	root, err = src.ResolveRoot(context.Background(), "/opt/skills")
	require.NoError(t, err)
	assert.Equal(t, "/opt/skills", root)
}

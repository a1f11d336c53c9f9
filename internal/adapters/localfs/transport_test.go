package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (src, dir string) {
	t.Helper()
	root := t.TempDir()
	src = filepath.Join(root, "repo")
	dir = filepath.Join(root, "skills")
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.MkdirAll(filepath.Join(src, name), 0755))
	}
	return src, dir
}

func TestList_MissingDirIsEmpty(t *testing.T) {
	entries, err := NewTransport().List(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_ClassifiesEntries(t *testing.T) {
	src, dir := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(src, "a"), filepath.Join(dir, "active")))
	require.NoError(t, os.Symlink(filepath.Join(src, "gone"), filepath.Join(dir, "broken")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	entries, err := NewTransport().List(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []domain.LinkEntry{
		{Name: "active", Target: filepath.Join(src, "a"), Status: domain.LinkActive},
		{Name: "broken", Target: filepath.Join(src, "gone"), Status: domain.LinkBroken},
		{Name: "Real", Status: domain.LinkDirect},
	}, entries)
}

func TestCreate_CreatesDirectoryAndLink(t *testing.T) {
	src, dir := setup(t)
	tr := NewTransport()

	require.NoError(t, tr.Create(context.Background(), "a", filepath.Join(src, "a"), dir))

	target, err := tr.ReadTarget(context.Background(), "a", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "a"), target)

	status, err := tr.Status(context.Background(), "a", dir)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkActive, status)
}

func TestCreate_ReplacesExistingSymlink(t *testing.T) {
	src, dir := setup(t)
	tr := NewTransport()
	require.NoError(t, tr.Create(context.Background(), "x", filepath.Join(src, "a"), dir))

	require.NoError(t, tr.Create(context.Background(), "x", filepath.Join(src, "b"), dir))

	target, err := tr.ReadTarget(context.Background(), "x", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "b"), target)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary links left behind")
	assert.NoDirExists(t, filepath.Join(src, "a", "x"), "old target directory untouched")
}

func TestCreate_RefusesRealDirectory(t *testing.T) {
	src, dir := setup(t)
	realDir := filepath.Join(dir, "a")
	require.NoError(t, os.MkdirAll(realDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "keep"), []byte("data"), 0644))

	err := NewTransport().Create(context.Background(), "a", filepath.Join(src, "a"), dir)

	assert.ErrorIs(t, err, domain.ErrRealDirectory)
	assert.FileExists(t, filepath.Join(realDir, "keep"))
	status, _ := NewTransport().Status(context.Background(), "a", dir)
	assert.Equal(t, domain.LinkDirect, status)
}

func TestCreate_RefusesRegularFile(t *testing.T) {
	src, dir := setup(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("x"), 0644))

	err := NewTransport().Create(context.Background(), "a", filepath.Join(src, "a"), dir)
	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
}

func TestCreate_InvalidName(t *testing.T) {
	src, dir := setup(t)
	err := NewTransport().Create(context.Background(), "../escape", src, dir)
	assert.ErrorIs(t, err, domain.ErrInvalidLinkName)
}

func TestRemove(t *testing.T) {
	src, dir := setup(t)
	tr := NewTransport()

	t.Run("symlink removed", func(t *testing.T) {
		require.NoError(t, tr.Create(context.Background(), "a", filepath.Join(src, "a"), dir))
		require.NoError(t, tr.Remove(context.Background(), "a", dir))

		status, err := tr.Status(context.Background(), "a", dir)
		require.NoError(t, err)
		assert.Equal(t, domain.LinkInactive, status)
		assert.DirExists(t, filepath.Join(src, "a"), "source untouched")
	})

	t.Run("missing is not an error", func(t *testing.T) {
		assert.NoError(t, tr.Remove(context.Background(), "nothing", dir))
	})

	t.Run("real directory refused", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0755))
		err := tr.Remove(context.Background(), "real", dir)
		assert.ErrorIs(t, err, domain.ErrNotSymlink)
		assert.DirExists(t, filepath.Join(dir, "real"))
	})

	t.Run("regular file refused", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0644))
		assert.ErrorIs(t, tr.Remove(context.Background(), "file", dir), domain.ErrNotSymlink)
	})
}

func TestStatus_AllStates(t *testing.T) {
	src, dir := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "direct"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(src, "a"), filepath.Join(dir, "active")))
	require.NoError(t, os.Symlink(filepath.Join(src, "missing"), filepath.Join(dir, "broken")))
	tr := NewTransport()

	tests := []struct {
		name     string
		expected domain.LinkStatus
	}{
		{"active", domain.LinkActive},
		{"broken", domain.LinkBroken},
		{"direct", domain.LinkDirect},
		{"absent", domain.LinkInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := tr.Status(context.Background(), tt.name, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestBroken(t *testing.T) {
	src, dir := setup(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.Symlink(filepath.Join(src, "a"), filepath.Join(dir, "ok")))
	require.NoError(t, os.Symlink(filepath.Join(src, "x"), filepath.Join(dir, "dead1")))
	require.NoError(t, os.Symlink(filepath.Join(src, "y"), filepath.Join(dir, "dead2")))

	names, err := NewTransport().Broken(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dead1", "dead2"}, names)
}

func TestReadTarget_NotSymlink(t *testing.T) {
	_, dir := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0755))

	_, err := NewTransport().ReadTarget(context.Background(), "real", dir)
	assert.ErrorIs(t, err, domain.ErrNotSymlink)
}

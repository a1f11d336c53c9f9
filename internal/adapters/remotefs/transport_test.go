package remotefs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/adapters/localfs"
	"github.com/skillpilot/skillpilot/internal/adapters/shell"
	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

// newShellTransport drives the remote transport through the local shell
func newShellTransport(t *testing.T) (*Transport, string, string) {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "repo")
	dir := filepath.Join(root, "skills")
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, os.MkdirAll(filepath.Join(src, name), 0755))
	}
	return NewTransport(shell.NewRunner(10 * time.Second)), src, dir
}

func TestCreate_ThroughShell(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	ctx := context.Background()

	require.NoError(t, tr.Create(ctx, "a", filepath.Join(src, "a"), dir))

	target, err := os.Readlink(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "a"), target)

	status, err := tr.Status(ctx, "a", dir)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkActive, status)
}

func TestCreate_ReplacesSymlinkToDirectory(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	ctx := context.Background()
	require.NoError(t, tr.Create(ctx, "x", filepath.Join(src, "a"), dir))

	require.NoError(t, tr.Create(ctx, "x", filepath.Join(src, "b"), dir))

	target, err := tr.ReadTarget(ctx, "x", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "b"), target)
	_, err = os.Lstat(filepath.Join(src, "a", "b"))
	assert.True(t, os.IsNotExist(err), "must not create a link inside the old target")
}

func TestCreate_RefusesRealDirectoryRemotely(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "inner"), 0755))

	err := tr.Create(context.Background(), "a", filepath.Join(src, "a"), dir)

	assert.ErrorIs(t, err, domain.ErrRealDirectory)
	assert.DirExists(t, filepath.Join(dir, "a", "inner"))
}

func TestCreate_RefusesRegularFileRemotely(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	slot := filepath.Join(dir, "a")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(slot, []byte("notes"), 0644))

	err := tr.Create(context.Background(), "a", filepath.Join(src, "a"), dir)

	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
	info, err := os.Lstat(slot)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	data, err := os.ReadFile(slot)
	require.NoError(t, err)
	assert.Equal(t, "notes", string(data))
}

func TestRemove_RefusesRegularFileRemotely(t *testing.T) {
	tr, _, dir := newShellTransport(t)
	slot := filepath.Join(dir, "a")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(slot, []byte("notes"), 0644))

	err := tr.Remove(context.Background(), "a", dir)

	assert.ErrorIs(t, err, domain.ErrNotSymlink)
	assert.FileExists(t, slot)
}

func TestCreate_QuotedPathsRoundTrip(t *testing.T) {
	tr, _, dir := newShellTransport(t)
	ctx := context.Background()
	src := filepath.Join(t.TempDir(), "a'b $(echo pwned)")
	require.NoError(t, os.MkdirAll(src, 0755))

	require.NoError(t, tr.Create(ctx, "it's", src, dir))

	target, err := os.Readlink(filepath.Join(dir, "it's"))
	require.NoError(t, err)
	assert.Equal(t, src, target)

	entries, err := tr.List(ctx, dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "it's", entries[0].Name)
	assert.Equal(t, domain.LinkActive, entries[0].Status)
}

func TestRemove_ThroughShell(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	ctx := context.Background()
	require.NoError(t, tr.Create(ctx, "a", filepath.Join(src, "a"), dir))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0755))

	require.NoError(t, tr.Remove(ctx, "a", dir))
	require.NoError(t, tr.Remove(ctx, "missing", dir))
	assert.ErrorIs(t, tr.Remove(ctx, "real", dir), domain.ErrNotSymlink)

	assert.DirExists(t, filepath.Join(dir, "real"))
	assert.DirExists(t, filepath.Join(src, "a"))
	_, err := os.Lstat(filepath.Join(dir, "a"))
	assert.True(t, os.IsNotExist(err))
}

func TestList_MatchesLocalTransport(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	ctx := context.Background()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Direct"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(src, "a"), filepath.Join(dir, "active")))
	require.NoError(t, os.Symlink(filepath.Join(src, "gone"), filepath.Join(dir, "broken")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0644))

	remote, err := tr.List(ctx, dir)
	require.NoError(t, err)
	local, err := localfs.NewTransport().List(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, local, remote)

	for _, name := range []string{"active", "broken", "Direct", "absent"} {
		rs, err := tr.Status(ctx, name, dir)
		require.NoError(t, err)
		ls, err := localfs.NewTransport().Status(ctx, name, dir)
		require.NoError(t, err)
		assert.Equal(t, ls, rs, name)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	tr, _, dir := newShellTransport(t)
	entries, err := tr.List(context.Background(), filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBroken_ThroughShell(t *testing.T) {
	tr, src, dir := newShellTransport(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.Symlink(filepath.Join(src, "a"), filepath.Join(dir, "ok")))
	require.NoError(t, os.Symlink(filepath.Join(src, "zz"), filepath.Join(dir, "dead")))

	names, err := tr.Broken(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dead"}, names)
}

func TestCreate_SendsWireCommands(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "ls -la '/s' 2>/dev/null || true").
		Return(domain.CommandResult{Stdout: "total 0\n"}, nil).Once()
	runner.EXPECT().Run(mock.Anything, "test -e '/s/a' && echo 'exists' || echo 'broken'").
		Return(domain.CommandResult{Stdout: "broken\n"}, nil).Once()
	runner.EXPECT().Run(mock.Anything, "mkdir -p '/s' && ln -sf '/src/a' '/s/a'").
		Return(domain.CommandResult{}, nil).Once()

	require.NoError(t, NewTransport(runner).Create(context.Background(), "a", "/src/a", "/s"))
}

func TestCreate_SurfacesStderr(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "ls -la '/s' 2>/dev/null || true").
		Return(domain.CommandResult{}, nil).Once()
	runner.EXPECT().Run(mock.Anything, "test -e '/s/a' && echo 'exists' || echo 'broken'").
		Return(domain.CommandResult{Stdout: "broken\n"}, nil).Once()
	runner.EXPECT().Run(mock.Anything, mock.AnythingOfType("string")).
		Return(domain.CommandResult{ExitCode: 1, Stderr: "ln: Permission denied\n"}, nil).Once()

	err := NewTransport(runner).Create(context.Background(), "a", "/src/a", "/s")

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "ln: Permission denied", cmdErr.Stderr)
}

func TestStatus_MalformedExistsOutput(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "ls -la '/s' 2>/dev/null || true").
		Return(domain.CommandResult{Stdout: "lrwxrwxrwx 1 u g 1 Jan 1 00:00 a -> /x\n"}, nil)
	runner.EXPECT().Run(mock.Anything, "test -e '/s/a' && echo 'exists' || echo 'broken'").
		Return(domain.CommandResult{Stdout: "garbage"}, nil)

	_, err := NewTransport(runner).Status(context.Background(), "a", "/s")
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestList_ConnectionErrorAborts(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	connErr := &domain.ConnectionError{Server: "s1", Op: "exec", Err: errors.New("eof")}
	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.CommandResult{}, connErr)

	_, err := NewTransport(runner).List(context.Background(), "/s")
	assert.ErrorIs(t, err, connErr)
}

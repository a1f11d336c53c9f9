package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/adapters/localfs"
	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

func permissiveStats(t *testing.T) *portsmocks.MockStatsRecorder {
	stats := portsmocks.NewMockStatsRecorder(t)
	stats.EXPECT().RecordLinksCreated(mock.Anything, mock.Anything).Return(nil).Maybe()
	stats.EXPECT().RecordLinksRemoved(mock.Anything, mock.Anything).Return(nil).Maybe()
	stats.EXPECT().RecordBrokenCleaned(mock.Anything, mock.Anything).Return(nil).Maybe()
	stats.EXPECT().RecordProfileApply(mock.Anything, mock.Anything).Return(nil).Maybe()
	stats.EXPECT().RecordToggle(mock.Anything, mock.Anything).Return(nil).Maybe()
	return stats
}

func TestReconcile_Convergence(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	transport.EXPECT().List(mock.Anything, "/skills").Return([]domain.LinkEntry{
		{Name: "a", Status: domain.LinkActive, Target: "/src/a"},
		{Name: "b", Status: domain.LinkActive, Target: "/src/b"},
		{Name: "c", Status: domain.LinkBroken, Target: "/src/c"},
		{Name: "real", Status: domain.LinkDirect},
	}, nil)
	transport.EXPECT().Remove(mock.Anything, "a", "/skills").Return(nil)
	transport.EXPECT().Remove(mock.Anything, "c", "/skills").Return(nil)
	transport.EXPECT().Create(mock.Anything, "b", "/src/b", "/skills").Return(nil)
	transport.EXPECT().Create(mock.Anything, "d", "/src/d", "/skills").Return(nil)
	stats.EXPECT().RecordLinksCreated(mock.Anything, 2).Return(nil)
	stats.EXPECT().RecordLinksRemoved(mock.Anything, 2).Return(nil)

	service := NewLinkService(transport, stats)
	result, err := service.Reconcile(context.Background(), "/skills", domain.DesiredLinkSet{"b": "/src/b", "d": "/src/d"})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, result.Created)
	assert.ElementsMatch(t, []string{"a", "c"}, result.Removed)
	assert.Empty(t, result.Failures)
}

func TestReconcile_FailureIsolation(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	boom := errors.New("permission denied")

	transport.EXPECT().List(mock.Anything, "/skills").Return([]domain.LinkEntry{
		{Name: "stale", Status: domain.LinkActive},
	}, nil)
	transport.EXPECT().Remove(mock.Anything, "stale", "/skills").Return(boom)
	transport.EXPECT().Create(mock.Anything, "bad", "/src/bad", "/skills").Return(domain.ErrRealDirectory)
	transport.EXPECT().Create(mock.Anything, "good", "/src/good", "/skills").Return(nil)

	service := NewLinkService(transport, permissiveStats(t))
	result, err := service.Reconcile(context.Background(), "/skills", domain.DesiredLinkSet{"bad": "/src/bad", "good": "/src/good"})

	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, result.Created)
	assert.Empty(t, result.Removed)

	f, ok := result.FailureFor("bad")
	require.True(t, ok)
	assert.Equal(t, domain.OpCreate, f.Op)
	assert.ErrorIs(t, f.Err, domain.ErrRealDirectory)

	f, ok = result.FailureFor("stale")
	require.True(t, ok)
	assert.Equal(t, domain.OpRemove, f.Op)
}

func TestReconcile_ListFailureAborts(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	transport.EXPECT().List(mock.Anything, "/skills").Return(nil, errors.New("connection lost"))

	service := NewLinkService(transport, portsmocks.NewMockStatsRecorder(t))
	_, err := service.Reconcile(context.Background(), "/skills", domain.DesiredLinkSet{"a": "/src/a"})

	assert.Error(t, err)
}

func TestReconcile_StatsFailureIsLogged(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	transport.EXPECT().List(mock.Anything, "/skills").Return([]domain.LinkEntry{}, nil)
	transport.EXPECT().Create(mock.Anything, "a", "/src/a", "/skills").Return(nil)
	stats.EXPECT().RecordLinksCreated(mock.Anything, 1).Return(errors.New("database is locked"))

	result, err := NewLinkService(transport, stats).Reconcile(context.Background(), "/skills", domain.DesiredLinkSet{"a": "/src/a"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Created)
}

func TestApplyProfile_CreateOnly(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	transport.EXPECT().Create(mock.Anything, "a", "/src/a", "/skills").Return(nil)
	stats.EXPECT().RecordLinksCreated(mock.Anything, 1).Return(nil)
	stats.EXPECT().RecordProfileApply(mock.Anything, "backend").Return(nil)

	result, err := NewLinkService(transport, stats).ApplyProfile(context.Background(), "/skills", domain.DesiredLinkSet{"a": "/src/a"}, "backend")

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Created)
	transport.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	transport.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanBroken(t *testing.T) {
	transport := portsmocks.NewMockLinkTransport(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	transport.EXPECT().Broken(mock.Anything, "/skills").Return([]string{"x", "y"}, nil)
	transport.EXPECT().Remove(mock.Anything, "x", "/skills").Return(nil)
	transport.EXPECT().Remove(mock.Anything, "y", "/skills").Return(domain.ErrNotSymlink)
	stats.EXPECT().RecordBrokenCleaned(mock.Anything, 1).Return(nil)

	result, err := NewLinkService(transport, stats).CleanBroken(context.Background(), "/skills")

	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, result.Removed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "y", result.Failures[0].Name)
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.LinkStatus
		setup    func(tr *portsmocks.MockLinkTransport)
		expected domain.LinkStatus
		wantErr  error
	}{
		{
			name:   "inactive becomes active",
			status: domain.LinkInactive,
			setup: func(tr *portsmocks.MockLinkTransport) {
				tr.EXPECT().Create(mock.Anything, "pdf", "/src/pdf", "/skills").Return(nil)
			},
			expected: domain.LinkActive,
		},
		{
			name:   "active becomes inactive",
			status: domain.LinkActive,
			setup: func(tr *portsmocks.MockLinkTransport) {
				tr.EXPECT().Remove(mock.Anything, "pdf", "/skills").Return(nil)
			},
			expected: domain.LinkInactive,
		},
		{
			name:   "broken becomes inactive",
			status: domain.LinkBroken,
			setup: func(tr *portsmocks.MockLinkTransport) {
				tr.EXPECT().Remove(mock.Anything, "pdf", "/skills").Return(nil)
			},
			expected: domain.LinkInactive,
		},
		{
			name:     "direct is refused",
			status:   domain.LinkDirect,
			setup:    func(tr *portsmocks.MockLinkTransport) {},
			expected: domain.LinkDirect,
			wantErr:  domain.ErrRealDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := portsmocks.NewMockLinkTransport(t)
			transport.EXPECT().Status(mock.Anything, "pdf", "/skills").Return(tt.status, nil)
			tt.setup(transport)

			got, err := NewLinkService(transport, permissiveStats(t)).Toggle(context.Background(), "/skills", "pdf", "/src/pdf")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReconcile_LocalIdempotent(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "skills")
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", name), 0755))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mine"), 0755))
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.Symlink(filepath.Join(root, "repo", name), filepath.Join(dir, name)))
	}

	desired := domain.DesiredLinkSet{
		"b": filepath.Join(root, "repo", "b"),
		"d": filepath.Join(root, "repo", "d"),
	}
	service := NewLinkService(localfs.NewTransport(), permissiveStats(t))

	first, err := service.Reconcile(context.Background(), dir, desired)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, first.Created)
	assert.ElementsMatch(t, []string{"a", "c"}, first.Removed)

	second, err := service.Reconcile(context.Background(), dir, desired)
	require.NoError(t, err)
	assert.Equal(t, first.Created, second.Created)
	assert.Empty(t, second.Removed)

	entries, err := service.ListLinks(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []domain.LinkEntry{
		{Name: "b", Status: domain.LinkActive, Target: desired["b"]},
		{Name: "d", Status: domain.LinkActive, Target: desired["d"]},
		{Name: "mine", Status: domain.LinkDirect},
	}, entries)
}

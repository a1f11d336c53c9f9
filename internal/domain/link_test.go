package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		kind         EntryKind
		targetExists bool
		expected     LinkStatus
	}{
		{"symlink with target", EntrySymlink, true, LinkActive},
		{"symlink without target", EntrySymlink, false, LinkBroken},
		{"real directory", EntryDirectory, true, LinkDirect},
		{"absent", EntryNone, false, LinkInactive},
		{"regular file", EntryFile, true, LinkInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.kind, tt.targetExists))
		})
	}
}

func TestSortEntries_CaseInsensitive(t *testing.T) {
	entries := []LinkEntry{{Name: "beta"}, {Name: "Alpha"}, {Name: "gamma"}, {Name: "Delta"}}
	SortEntries(entries)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Alpha", "beta", "Delta", "gamma"}, names)
}

func TestDesiredLinkSet_Names(t *testing.T) {
	d := DesiredLinkSet{"d": "/src/d", "b": "/src/b"}
	assert.Equal(t, []string{"b", "d"}, d.Names())
	assert.Empty(t, DesiredLinkSet{}.Names())
}

func TestValidateLinkName(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"foo", true},
		{"with space", true},
		{"it's", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateLinkName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidLinkName)
			}
		})
	}
}

func TestReconcileResult_FailureFor(t *testing.T) {
	r := &ReconcileResult{Failures: []LinkFailure{{Name: "x", Op: OpCreate, Err: ErrRealDirectory}}}

	f, ok := r.FailureFor("x")
	require.True(t, ok)
	assert.Equal(t, OpCreate, f.Op)

	_, ok = r.FailureFor("y")
	assert.False(t, ok)
}

func TestCommandResult_Checked(t *testing.T) {
	t.Run("zero exit", func(t *testing.T) {
		out, err := CommandResult{Stdout: "ok\n"}.Checked()
		require.NoError(t, err)
		assert.Equal(t, "ok\n", out)
	})

	t.Run("non-zero exit with empty stderr is success", func(t *testing.T) {
		out, err := CommandResult{Stdout: "partial", ExitCode: 1, Stderr: "  \n"}.Checked()
		require.NoError(t, err)
		assert.Equal(t, "partial", out)
	})

	t.Run("non-zero exit with stderr fails", func(t *testing.T) {
		_, err := CommandResult{ExitCode: 2, Stderr: "ls: cannot access\n"}.Checked()
		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 2, cmdErr.ExitCode)
		assert.Equal(t, "ls: cannot access", cmdErr.Stderr)
	})

	t.Run("stderr with zero exit is success", func(t *testing.T) {
		_, err := CommandResult{Stderr: "warning"}.Checked()
		assert.NoError(t, err)
	})
}

func TestErrors_Unwrap(t *testing.T) {
	base := errors.New("boom")

	assert.ErrorIs(t, &AuthError{Method: AuthKey, Reason: "bad key", Err: base}, base)
	assert.ErrorIs(t, &ConnectionError{Server: "s1", Op: "dial", Err: base}, base)
	assert.ErrorIs(t, &LinkError{Name: "n", Op: OpRemove, Err: ErrNotSymlink}, ErrNotSymlink)

	assert.Equal(t, "SSH Agent authentication failed: no matching key", (&AuthError{Method: AuthAgent, Reason: "no matching key"}).Error())
}

package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEditor_Priority(t *testing.T) {
	o := &Opener{lookPath: func(string) (string, error) { return "", errors.New("not found") }}

	t.Setenv("SKILLPILOT_EDITOR", "nano")
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")

	name, args := o.findEditor("subl -n")
	assert.Equal(t, "subl", name)
	assert.Equal(t, []string{"-n"}, args)

	name, _ = o.findEditor("")
	assert.Equal(t, "nano", name)

	t.Setenv("SKILLPILOT_EDITOR", "")
	name, args = o.findEditor("")
	assert.Equal(t, "code", name)
	assert.Equal(t, []string{"--wait"}, args)
}

func TestFindEditor_PlatformDefault(t *testing.T) {
	t.Setenv("SKILLPILOT_EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	o := &Opener{lookPath: func(name string) (string, error) {
		if name == defaultEditors[1] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}}
	name, args := o.findEditor("")
	assert.Equal(t, defaultEditors[1], name)
	assert.Empty(t, args)

	o.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	name, _ = o.findEditor("")
	assert.Empty(t, name)
}

func TestOpen_MissingPath(t *testing.T) {
	err := NewOpener().Open(t.TempDir()+"/missing", "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestOpen_RunsEditor(t *testing.T) {
	if _, err := NewOpener().lookPath("true"); err != nil {
		t.Skip("true not available")
	}
	assert.NoError(t, NewOpener().Open(t.TempDir(), "true"))
}

package shellproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "'simple'"},
		{"", "''"},
		{"with space", "'with space'"},
		{"/tmp/a'b", `'/tmp/a'\''b'`},
		{"$HOME;rm -rf /", "'$HOME;rm -rf /'"},
		{"''", `''\'''\'''`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellEscape(tt.input))
		})
	}
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"~", `"$HOME"`},
		{"~/.claude/skills", `"$HOME"/'.claude/skills'`},
		{"/abs/path", "'/abs/path'"},
		{"~user/x", "'~user/x'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapePath(tt.input))
		})
	}
}

func TestSlotPath(t *testing.T) {
	assert.Equal(t, "/d/n", SlotPath("/d", "n"))
	assert.Equal(t, "/d/n", SlotPath("/d/", "n"))
}

package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardWhenNotDebugging(t *testing.T) {
	t.Setenv("SKILLPILOT_DEBUG", "")
	t.Setenv("SKILLPILOT_DEBUG_FILE", "")

	require.NoError(t, Initialize(Options{MaxLogFiles: DefaultMaxLogFiles}))
	assert.False(t, Logger.Enabled(context.Background(), 0))
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("SKILLPILOT_DEBUG", "")
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Initialize(Options{DebugFile: path}))
	Logger.Info("hello", "server", "s1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := splitLines(string(data))
	require.NotEmpty(t, lines)
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "s1", record["server"])
}

func TestInitialize_EnvDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("SKILLPILOT_DEBUG", "1")
	t.Setenv("SKILLPILOT_DEBUG_FILE", path)

	require.NoError(t, Initialize(Options{}))
	Logger.Debug("from env")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from env")
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(p, nil, 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "keep.txt"}, names)
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

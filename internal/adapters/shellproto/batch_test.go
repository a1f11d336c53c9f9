package shellproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatchDump(t *testing.T) {
	output := "===SP_SEP===\nPATH:/repo/a/SKILL.md\n---\nname: a\n---\nbody\n" +
		"===SP_SEP===\nno marker here\n" +
		"===SP_SEP===\nPATH:/repo/b/SKILL.md\n"

	files := ParseBatchDump(output, SkillSeparator)
	require.Len(t, files, 2)
	assert.Equal(t, "/repo/a/SKILL.md", files[0].Path)
	assert.Equal(t, "---\nname: a\n---\nbody", files[0].Content)
	assert.Equal(t, "/repo/b/SKILL.md", files[1].Path)
	assert.Empty(t, files[1].Content)
}

func TestParseBatchDump_Empty(t *testing.T) {
	assert.Empty(t, ParseBatchDump("", SkillSeparator))
	assert.Empty(t, ParseBatchDump("===SP_SEP===\n\n===SP_SEP===", SkillSeparator))
}

func TestSplitBlocks(t *testing.T) {
	output := "===PROFILE_SEP===\n{\"id\":\"a\"}\n===PROFILE_SEP===\n{\"id\":\"b\"}\n"
	assert.Equal(t, []string{`{"id":"a"}`, `{"id":"b"}`}, SplitBlocks(output, ProfileSeparator))
}

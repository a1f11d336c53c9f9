package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

func TestDiscover(t *testing.T) {
	source := portsmocks.NewMockSkillSource(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	source.EXPECT().ResolveRoot(mock.Anything, "~/repo").Return("/home/dev/repo", nil)
	source.EXPECT().SkillFiles(mock.Anything, "/home/dev/repo").Return([]domain.SkillFile{
		{Path: "/home/dev/repo/vendor/anthropic/backend/pdf/SKILL.md", Content: "---\nname: pdf\n---\n# duplicate"},
		{Path: "/home/dev/repo/pdf/SKILL.md", Content: "---\nname: pdf\ndescription: Read PDFs\ntags: [docs]\n---\nUse skill `docx` too."},
		{Path: "/home/dev/repo/vendor/anthropic/frontend/Charts/SKILL.md", Content: "# Draw charts\n\nrequires: 'pdf'"},
	}, nil)
	source.EXPECT().Submodules(mock.Anything, "/home/dev/repo").Return(map[string]string{
		"anthropic":        "/home/dev/repo/vendor/anthropic",
		"vendor/anthropic": "/home/dev/repo/vendor/anthropic",
	}, nil)
	stats.EXPECT().RecordScan(mock.Anything).Return(nil)

	skills, err := NewDiscoveryService(stats).Discover(context.Background(), source, "~/repo")
	require.NoError(t, err)
	require.Len(t, skills, 2)

	charts := skills[0]
	assert.Equal(t, "Charts", charts.Name)
	assert.Equal(t, "vendor/anthropic/frontend/Charts", charts.ID)
	assert.Equal(t, "Draw charts", charts.Description)
	assert.Equal(t, "anthropic", charts.SourceRepo)
	assert.Equal(t, "frontend", charts.Category)
	assert.Equal(t, []string{"pdf"}, charts.Dependencies)

	pdf := skills[1]
	assert.Equal(t, "pdf", pdf.Name)
	assert.Equal(t, "/home/dev/repo/pdf", pdf.Path)
	assert.Equal(t, "Read PDFs", pdf.Description)
	assert.Equal(t, "pdf", pdf.SourceRepo)
	assert.Equal(t, []string{"docs"}, pdf.Tags)
	assert.Equal(t, []string{"docx"}, pdf.Dependencies)
	assert.Empty(t, pdf.Category)
}

func TestDiscover_SubmoduleFailureIsTolerated(t *testing.T) {
	source := portsmocks.NewMockSkillSource(t)
	stats := portsmocks.NewMockStatsRecorder(t)

	source.EXPECT().ResolveRoot(mock.Anything, "/repo").Return("/repo", nil)
	source.EXPECT().SkillFiles(mock.Anything, "/repo").Return([]domain.SkillFile{
		{Path: "/repo/tools/lint/SKILL.md", Content: "---\n: bad yaml [\n---\nLints code"},
	}, nil)
	source.EXPECT().Submodules(mock.Anything, "/repo").Return(nil, errors.New("timeout"))
	stats.EXPECT().RecordScan(mock.Anything).Return(errors.New("locked"))

	skills, err := NewDiscoveryService(stats).Discover(context.Background(), source, "/repo")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "lint", skills[0].Name)
	assert.Equal(t, "Lints code", skills[0].Description)
	assert.Equal(t, "tools", skills[0].SourceRepo)
	assert.Equal(t, "tools", skills[0].Category)
}

func TestDiscover_ScanFailure(t *testing.T) {
	source := portsmocks.NewMockSkillSource(t)
	source.EXPECT().ResolveRoot(mock.Anything, "/repo").Return("/repo", nil)
	source.EXPECT().SkillFiles(mock.Anything, "/repo").Return(nil, errors.New("repository path does not exist"))

	_, err := NewDiscoveryService(portsmocks.NewMockStatsRecorder(t)).Discover(context.Background(), source, "/repo")
	assert.Error(t, err)
}

func TestFirstBodyLine(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"heading", "# Title\nbody", "Title"},
		{"after frontmatter", "---\nname: x\n---\n\n## Sub title\n", "Sub title"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstBodyLine(tt.content))
		})
	}
}

package remotefs

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillpilot/skillpilot/internal/adapters/shellproto"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// SkillSource dumps a remote repository's SKILL.md files in one command
type SkillSource struct {
	runner ports.CommandRunner
}

var _ ports.SkillSource = (*SkillSource)(nil)

func NewSkillSource(runner ports.CommandRunner) *SkillSource {
	return &SkillSource{runner: runner}
}

// ResolveRoot expands a leading ~ against the server's $HOME
func (s *SkillSource) ResolveRoot(ctx context.Context, repo string) (string, error) {
	if repo != "~" && !strings.HasPrefix(repo, "~/") {
		return strings.TrimRight(repo, "/"), nil
	}
	res, err := s.runner.Run(ctx, shellproto.HomeCommand)
	if err != nil {
		return "", fmt.Errorf("failed to resolve remote home: %w", err)
	}
	out, err := res.Checked()
	if err != nil {
		return "", err
	}
	home := strings.TrimSpace(out)
	if home == "" {
		return "", fmt.Errorf("%w: empty $HOME", domain.ErrMalformed)
	}
	return strings.TrimRight(home+repo[1:], "/"), nil
}

func (s *SkillSource) SkillFiles(ctx context.Context, repo string) ([]domain.SkillFile, error) {
	res, err := s.runner.Run(ctx, shellproto.SkillDumpCommand(repo))
	if err != nil {
		return nil, fmt.Errorf("failed to scan remote repo %s: %w", repo, err)
	}
	// find exits non-zero on unreadable subtrees; whatever it printed is still usable
	var files []domain.SkillFile
	for _, b := range shellproto.ParseBatchDump(res.Stdout, shellproto.SkillSeparator) {
		files = append(files, domain.SkillFile{Path: b.Path, Content: b.Content})
	}
	return files, nil
}

func (s *SkillSource) Submodules(ctx context.Context, repo string) (map[string]string, error) {
	res, err := s.runner.Run(ctx, shellproto.SubmodulesCommand(repo))
	if err != nil {
		return nil, fmt.Errorf("failed to read remote .gitmodules: %w", err)
	}
	return shellproto.ParseSubmodules(res.Stdout, repo), nil
}

package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/skillpilot/skillpilot/internal/adapters/shellproto"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/paths"
	"github.com/skillpilot/skillpilot/internal/ports"
)

const skillFileName = "SKILL.md"

// SkillSource implements ports.SkillSource by walking a local repository
type SkillSource struct {
	excluded []string
}

var _ ports.SkillSource = (*SkillSource)(nil)

// NewSkillSource creates a local skill source. extraExcluded adds directory names to skip.
func NewSkillSource(extraExcluded ...string) *SkillSource {
	return &SkillSource{excluded: append(slices.Clone(shellproto.ExcludedDirs), extraExcluded...)}
}

// ResolveRoot expands ~ and makes repo absolute
func (s *SkillSource) ResolveRoot(ctx context.Context, repo string) (string, error) {
	return filepath.Abs(paths.ExpandPath(repo))
}

// SkillFiles walks repo in lexical order. Hidden and excluded directories are pruned.
func (s *SkillSource) SkillFiles(ctx context.Context, repo string) ([]domain.SkillFile, error) {
	info, err := os.Stat(repo)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("repository path does not exist: %s", repo)
	}

	var files []domain.SkillFile
	err = filepath.WalkDir(repo, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Logger.Debug("Skipping unreadable path", "path", p, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != repo && s.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != skillFileName {
			return nil
		}
		content, err := os.ReadFile(p)
		if err != nil {
			logging.Logger.Debug("Skipping unreadable skill file", "path", p, "error", err)
			return nil
		}
		files = append(files, domain.SkillFile{Path: p, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *SkillSource) skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(s.excluded, name)
}

// Submodules parses repo/.gitmodules; a missing manifest yields an empty map
func (s *SkillSource) Submodules(ctx context.Context, repo string) (map[string]string, error) {
	content, err := os.ReadFile(filepath.Join(repo, ".gitmodules"))
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitmodules: %w", err)
	}
	return shellproto.ParseSubmodules(string(content), repo), nil
}

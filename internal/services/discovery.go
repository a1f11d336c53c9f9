package services

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

var knownCategories = map[string]bool{
	"backend":   true,
	"content":   true,
	"devops":    true,
	"frontend":  true,
	"marketing": true,
	"tools":     true,
}

var dependencyPattern = regexp.MustCompile("(?:skill|invoke|use|require|depend)[s]?\\s*[:\\-]?\\s*[\"'`]([a-zA-Z0-9_-]+)[\"'`]")

type skillFrontmatter struct {
	Description *string  `yaml:"description"`
	Name        *string  `yaml:"name"`
	Tags        []string `yaml:"tags"`
	Version     *string  `yaml:"version"`
}

// DiscoveryService builds the skill catalog of a repository
type DiscoveryService struct {
	stats ports.StatsRecorder
}

// NewDiscoveryService creates a new DiscoveryService
func NewDiscoveryService(stats ports.StatsRecorder) *DiscoveryService {
	return &DiscoveryService{stats: stats}
}

// Discover scans repo through source. Skills are deduplicated by name (first path wins)
// and returned sorted case-insensitively by name.
func (s *DiscoveryService) Discover(ctx context.Context, source ports.SkillSource, repo string) ([]domain.Skill, error) {
	root, err := source.ResolveRoot(ctx, repo)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Discovering skills", "repo", root)

	files, err := source.SkillFiles(ctx, root)
	if err != nil {
		logging.Logger.Error("Failed to read skill files", "repo", root, "error", err)
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	submodules, err := source.Submodules(ctx, root)
	if err != nil {
		logging.Logger.Warn("Ignoring unreadable submodule manifest", "repo", root, "error", err)
		submodules = nil
	}

	// find gives no ordering guarantee; shortest path first keeps top-level skills ahead of copies
	sort.SliceStable(files, func(i, j int) bool {
		di, dj := strings.Count(files[i].Path, "/"), strings.Count(files[j].Path, "/")
		if di != dj {
			return di < dj
		}
		return files[i].Path < files[j].Path
	})

	seen := make(map[string]bool)
	skills := make([]domain.Skill, 0, len(files))
	for _, f := range files {
		skill := buildSkill(root, f, submodules)
		if seen[skill.Name] {
			logging.Logger.Debug("Skipping duplicate skill", "name", skill.Name, "path", skill.Path)
			continue
		}
		seen[skill.Name] = true
		skills = append(skills, skill)
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return strings.ToLower(skills[i].Name) < strings.ToLower(skills[j].Name)
	})

	if err := s.stats.RecordScan(ctx); err != nil {
		logging.Logger.Warn("Failed to record scan", "error", err)
	}
	logging.Logger.Info("Skills discovered", "repo", root, "count", len(skills))
	return skills, nil
}

func buildSkill(root string, f domain.SkillFile, submodules map[string]string) domain.Skill {
	dir := path.Dir(f.Path)
	dirName := path.Base(dir)
	rel := relativePath(root, dir)

	fm := parseFrontmatter(f.Content)
	name := dirName
	if fm.Name != nil && strings.TrimSpace(*fm.Name) != "" {
		name = strings.TrimSpace(*fm.Name)
	}

	description := ""
	if fm.Description != nil {
		description = strings.TrimSpace(*fm.Description)
	} else {
		description = firstBodyLine(f.Content)
	}

	if rel == "" {
		rel = dirName
	}

	return domain.Skill{
		ID:           rel,
		Name:         name,
		Description:  description,
		Path:         dir,
		SourceRepo:   sourceRepo(root, dir, submodules),
		Category:     category(rel),
		Tags:         fm.Tags,
		Dependencies: dependencies(f.Content),
	}
}

// parseFrontmatter reads the YAML block between the leading --- markers.
// Missing or invalid frontmatter yields zero values.
func parseFrontmatter(content string) skillFrontmatter {
	var fm skillFrontmatter
	if !strings.HasPrefix(content, "---") {
		return fm
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return fm
	}
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(parts[1])), &fm); err != nil {
		logging.Logger.Debug("Invalid skill frontmatter", "error", err)
		return skillFrontmatter{}
	}
	return fm
}

// firstBodyLine returns the first non-empty line after any frontmatter, without heading marks
func firstBodyLine(content string) string {
	body := content
	if strings.HasPrefix(content, "---") {
		if parts := strings.SplitN(content, "---", 3); len(parts) == 3 {
			body = parts[2]
		}
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "---") {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "#"))
	}
	return ""
}

// sourceRepo names the submodule containing dir (longest match), else the first path segment.
// Each submodule is keyed by both its name and its path; the name is preferred.
func sourceRepo(root, dir string, submodules map[string]string) string {
	best, bestLen, bestIsPath := "", -1, false
	for key, subPath := range submodules {
		if !isWithin(dir, subPath) {
			continue
		}
		isPath := key == relativePath(root, subPath)
		switch {
		case len(subPath) > bestLen,
			len(subPath) == bestLen && bestIsPath && !isPath,
			len(subPath) == bestLen && bestIsPath == isPath && key < best:
			best, bestLen, bestIsPath = key, len(subPath), isPath
		}
	}
	if best != "" {
		return best
	}

	rel := relativePath(root, dir)
	if rel == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(rel, "/")
	return first
}

func category(rel string) string {
	for _, seg := range strings.Split(rel, "/") {
		if knownCategories[seg] {
			return seg
		}
	}
	return ""
}

func dependencies(content string) []string {
	var deps []string
	seen := make(map[string]bool)
	for _, m := range dependencyPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			deps = append(deps, m[1])
		}
	}
	sort.Strings(deps)
	return deps
}

func relativePath(root, p string) string {
	root = strings.TrimRight(root, "/")
	if rel, ok := strings.CutPrefix(p, root+"/"); ok {
		return rel
	}
	return ""
}

func isWithin(p, dir string) bool {
	dir = strings.TrimRight(dir, "/")
	return p == dir || strings.HasPrefix(p, dir+"/")
}

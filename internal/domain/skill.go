package domain

// Skill is a discovered skill directory
type Skill struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Path         string   `json:"path"`
	SourceRepo   string   `json:"source_repo,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// ResolveSkills maps requested ids or names to skills, in request order.
// Unknown entries are skipped and the first match per name wins.
func ResolveSkills(catalog []Skill, requested []string) []Skill {
	var out []Skill
	seen := make(map[string]bool)
	for _, want := range requested {
		for _, s := range catalog {
			if s.ID != want && s.Name != want {
				continue
			}
			if !seen[s.Name] {
				seen[s.Name] = true
				out = append(out, s)
			}
			break
		}
	}
	return out
}

// DesiredFromSkills builds the desired link set from resolved skills
func DesiredFromSkills(skills []Skill) DesiredLinkSet {
	desired := make(DesiredLinkSet, len(skills))
	for _, s := range skills {
		if _, ok := desired[s.Name]; ok {
			continue
		}
		desired[s.Name] = s.Path
	}
	return desired
}

// ProjectSkillIDs returns the skill ids a project requests: profile skills first, then extras
func ProjectSkillIDs(project ProjectConfig, profiles []Profile) []string {
	byID := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	var ids []string
	for _, pid := range project.ProfileIDs {
		if p, ok := byID[pid]; ok {
			ids = append(ids, p.SkillIDs...)
		}
	}
	return append(ids, project.ExtraSkillIDs...)
}

// SkillFile is the raw content of one SKILL.md found during discovery
type SkillFile struct {
	Content string
	Path    string
}

// FileEntry is a file inside a skill directory
type FileEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

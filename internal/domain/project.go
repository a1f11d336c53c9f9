package domain

// Profile is a named group of skills that can be applied together
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
	SkillIDs    []string `json:"skill_ids"`
	IsPreset    bool     `json:"is_preset"`
}

// ProjectConfig binds a project directory to profiles and extra skills
type ProjectConfig struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Path          string   `json:"path"`
	ProfileIDs    []string `json:"profile_ids"`
	ExtraSkillIDs []string `json:"extra_skill_ids"`
}

// Stats are cumulative usage counters
type Stats struct {
	ToggleCounts       map[string]int64 `json:"toggle_counts"`
	ProfileApplyCounts map[string]int64 `json:"profile_apply_counts"`
	TotalScans         int64            `json:"total_scans"`
	TotalLinksCreated  int64            `json:"total_links_created"`
	TotalLinksRemoved  int64            `json:"total_links_removed"`
	TotalBrokenCleaned int64            `json:"total_broken_cleaned"`
}

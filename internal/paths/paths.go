package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// GetHome returns SKILLPILOT_HOME or the ~/.claude-skill-manager default
func GetHome() string {
	home := os.Getenv("SKILLPILOT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".claude-skill-manager"
		}
		return filepath.Join(homeDir, ".claude-skill-manager")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $SKILLPILOT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetRemotesPath returns $SKILLPILOT_HOME/remotes.json
func GetRemotesPath() string {
	return filepath.Join(GetHome(), "remotes.json")
}

// GetProjectsPath returns $SKILLPILOT_HOME/projects.json
func GetProjectsPath() string {
	return filepath.Join(GetHome(), "projects.json")
}

// GetProfilesDir returns $SKILLPILOT_HOME/profiles
func GetProfilesDir() string {
	return filepath.Join(GetHome(), "profiles")
}

// GetStatsDBPath returns $SKILLPILOT_HOME/stats.db
func GetStatsDBPath() string {
	return filepath.Join(GetHome(), "stats.db")
}

// GetUserSkillsDir returns the default user-level skills directory
func GetUserSkillsDir() string {
	return ExpandPath("~/.claude/skills")
}

// ProjectSkillsDir returns the project-level skills directory for a project root
func ProjectSkillsDir(projectPath string) string {
	return filepath.Join(projectPath, ".claude", "skills")
}

// RemoteProjectSkillsDir is ProjectSkillsDir for POSIX remote paths
func RemoteProjectSkillsDir(projectPath string) string {
	return strings.TrimRight(projectPath, "/") + "/.claude/skills"
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

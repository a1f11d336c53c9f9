package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/skillpilot/skillpilot/internal/paths"
)

// Settings represents the structure of $SKILLPILOT_HOME/settings.json.
// Pointer fields distinguish "unset" from the zero value.
type Settings struct {
	CommandTimeoutSecs *int        `json:"command_timeout_secs,omitempty"`
	ConnectTimeoutSecs *int        `json:"connect_timeout_secs,omitempty"`
	Debug              *bool       `json:"debug,omitempty"`
	ExcludedDirs       StringArray `json:"excluded_dirs,omitempty"`
	KnownHostsFile     string      `json:"known_hosts_file,omitempty"`
	MaxLogFiles        *int        `json:"max_log_files,omitempty"`
	RepoPath           string      `json:"repo_path,omitempty"`
	UserSkillsDir      string      `json:"user_skills_dir,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $SKILLPILOT_HOME/settings.json.
// Returns empty Settings if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.KnownHostsFile = paths.ExpandPath(settings.KnownHostsFile)
	settings.RepoPath = paths.ExpandPath(settings.RepoPath)
	settings.UserSkillsDir = paths.ExpandPath(settings.UserSkillsDir)

	return &settings, nil
}

// SaveSettings saves settings to $SKILLPILOT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(paths.GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// SkillsDir returns the configured user-level skills directory or the default
func (s *Settings) SkillsDir() string {
	if s.UserSkillsDir != "" {
		return s.UserSkillsDir
	}
	return paths.GetUserSkillsDir()
}

// IntOr returns *v or def when v is unset
func IntOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/config"
	"github.com/skillpilot/skillpilot/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Repo SettingsRepoCmd `cmd:"repo" help:"Set the default skills repository"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure skillpilot.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsRepoCmd stores repo_path in settings.json
type SettingsRepoCmd struct {
	Path string `arg:"" help:"Path to the skills repository"`
}

// Run executes the repo command
func (s *SettingsRepoCmd) Run(container *Container) error {
	abs := paths.ExpandPath(s.Path)
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("skills repository %s is not a directory", abs)
	}

	container.Settings.RepoPath = abs
	if err := config.SaveSettings(container.Settings); err != nil {
		return err
	}
	fmt.Printf("repo_path set to %s\n", abs)
	return nil
}

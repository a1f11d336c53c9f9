package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/skillpilot/skillpilot/internal/config"
	"github.com/skillpilot/skillpilot/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Verbose     bool             `help:"Also print logs to stderr" short:"v"`

	Links    LinksCmd    `cmd:"links" help:"Inspect and reconcile skill links"`
	Profiles ProfilesCmd `cmd:"profiles" help:"Manage skill profiles"`
	Projects ProjectsCmd `cmd:"projects" help:"Manage project configs"`
	Servers  ServersCmd  `cmd:"servers" help:"Manage SSH servers"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`
	Skills   SkillsCmd   `cmd:"skills" help:"Browse the skill catalog"`
	Stats    StatsCmd    `cmd:"stats" help:"Show usage statistics"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// CLI flags > env vars > settings.json > defaults
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SKILLPILOT_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SKILLPILOT_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	if err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
		Verbose:     c.Verbose,
	}); err != nil {
		return err
	}

	// Container is created after logging so GORM's logger has a target
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/skillpilot/skillpilot/internal/cmd"
	"github.com/skillpilot/skillpilot/internal/config"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/version"
)

func main() {
	// Load settings from $SKILLPILOT_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("skillpilot"),
		kong.Description(version.Tagline),
		kong.Vars{
			"remote_config_dir": domain.DefaultRemoteConfigDir,
			"remote_skills_dir": domain.DefaultRemoteSkillsDir,
			"version":           version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}

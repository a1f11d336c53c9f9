package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/theme"
)

// ProfilesCmd manages skill profiles
type ProfilesCmd struct {
	Del  ProfilesDelCmd  `cmd:"del" help:"Delete a profile"`
	List ProfilesListCmd `cmd:"list" help:"List profiles" default:"1"`
	Save ProfilesSaveCmd `cmd:"save" help:"Create or update a profile"`
}

// ProfilesListCmd lists profiles
type ProfilesListCmd struct {
	TargetFlags
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProfilesListCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	profiles, err := container.ProfileService(env).ListProfiles(ctx)
	if err != nil {
		return err
	}
	if p.Format == "json" {
		return printJSON(profiles)
	}
	if len(profiles) == 0 {
		fmt.Println(theme.MutedStyle.Render("No profiles."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKILLS\tDESCRIPTION")
	for _, profile := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", profile.ID, profile.Name, strings.Join(profile.SkillIDs, ","), profile.Description)
	}
	return w.Flush()
}

// ProfilesSaveCmd creates or updates a profile. An existing profile with the same
// id or name is replaced.
type ProfilesSaveCmd struct {
	TargetFlags
	Color       string   `help:"Display color"`
	Description string   `help:"Profile description"`
	Name        string   `arg:"" help:"Profile name"`
	Skill       []string `help:"Skill id or name (repeatable)"`
}

// Run executes the save command
func (p *ProfilesSaveCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	profiles := container.ProfileService(env)

	profile := domain.Profile{Name: p.Name}
	existing, err := profiles.GetProfile(ctx, p.Name)
	switch {
	case err == nil:
		profile = *existing
	case !errors.Is(err, domain.ErrProfileNotFound):
		return err
	}
	profile.SkillIDs = p.Skill
	if p.Description != "" {
		profile.Description = p.Description
	}
	if p.Color != "" {
		profile.Color = p.Color
	}

	saved, err := profiles.SaveProfile(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Printf("Saved profile %s (%s)\n", saved.Name, saved.ID)
	return nil
}

// ProfilesDelCmd deletes a profile
type ProfilesDelCmd struct {
	TargetFlags
	Profile string `arg:"" help:"Profile id or name"`
}

// Run executes the del command
func (p *ProfilesDelCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	profiles := container.ProfileService(env)

	profile, err := profiles.GetProfile(ctx, p.Profile)
	if err != nil {
		return err
	}
	if err := profiles.DeleteProfile(ctx, profile.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted profile %s\n", profile.Name)
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/theme"
)

// ProjectsCmd manages project configs
type ProjectsCmd struct {
	Del  ProjectsDelCmd  `cmd:"del" help:"Delete a project config"`
	List ProjectsListCmd `cmd:"list" help:"List project configs" default:"1"`
	Save ProjectsSaveCmd `cmd:"save" help:"Create or update a project config"`
}

// ProjectsListCmd lists project configs
type ProjectsListCmd struct {
	TargetFlags
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProjectsListCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	projects, err := container.ProfileService(env).ListProjects(ctx)
	if err != nil {
		return err
	}
	if p.Format == "json" {
		return printJSON(projects)
	}
	if len(projects) == 0 {
		fmt.Println(theme.MutedStyle.Render("No projects."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPATH\tPROFILES\tEXTRA SKILLS")
	for _, project := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", project.ID, project.Name, project.Path,
			strings.Join(project.ProfileIDs, ","), strings.Join(project.ExtraSkillIDs, ","))
	}
	return w.Flush()
}

// ProjectsSaveCmd creates or updates the config of a project path
type ProjectsSaveCmd struct {
	TargetFlags
	Name    string   `help:"Project name (default: directory name)"`
	Path    string   `arg:"" help:"Project path"`
	Profile []string `help:"Profile id or name (repeatable)"`
	Skill   []string `help:"Extra skill id or name (repeatable)"`
}

// Run executes the save command
func (p *ProjectsSaveCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	profiles := container.ProfileService(env)

	path := projectKey(env, p.Path)

	project := domain.ProjectConfig{Path: path}
	existing, err := profiles.GetProject(ctx, path)
	switch {
	case err == nil:
		project = *existing
	case !errors.Is(err, domain.ErrProjectNotFound):
		return err
	}

	project.Name = p.Name
	if project.Name == "" {
		project.Name = filepath.Base(strings.TrimRight(path, "/"))
	}
	project.ProfileIDs = []string{}
	for _, key := range p.Profile {
		profile, err := profiles.GetProfile(ctx, key)
		if err != nil {
			return err
		}
		project.ProfileIDs = append(project.ProfileIDs, profile.ID)
	}
	project.ExtraSkillIDs = p.Skill
	if project.ExtraSkillIDs == nil {
		project.ExtraSkillIDs = []string{}
	}

	saved, err := profiles.SaveProject(ctx, project)
	if err != nil {
		return err
	}
	fmt.Printf("Saved project %s (%s)\n", saved.Name, saved.ID)
	return nil
}

// ProjectsDelCmd deletes a project config
type ProjectsDelCmd struct {
	TargetFlags
	Project string `arg:"" help:"Project id, path or name"`
}

// Run executes the del command
func (p *ProjectsDelCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := p.environment(ctx, container)
	if err != nil {
		return err
	}
	profiles := container.ProfileService(env)

	project, err := profiles.GetProject(ctx, p.Project)
	if errors.Is(err, domain.ErrProjectNotFound) {
		project, err = profiles.GetProject(ctx, projectKey(env, p.Project))
	}
	if err != nil {
		return err
	}
	if err := profiles.DeleteProject(ctx, project.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted project %s\n", project.Name)
	return nil
}

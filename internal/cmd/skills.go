package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/services"
	"github.com/skillpilot/skillpilot/internal/theme"
)

// SkillsCmd browses the skills repository
type SkillsCmd struct {
	Edit  SkillsEditCmd  `cmd:"edit" help:"Open a skill directory in an editor"`
	Files SkillsFilesCmd `cmd:"files" help:"List the files of a skill"`
	List  SkillsListCmd  `cmd:"list" help:"Discover and list skills" default:"1"`
	Show  SkillsShowCmd  `cmd:"show" help:"Print SKILL.md or another file of a skill"`
}

// SkillsListCmd lists the discovered catalog
type SkillsListCmd struct {
	TargetFlags
	Category string `help:"Only show skills of this category"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Repo     string `help:"Skills repository (default: repo_path)"`
}

// Run executes the list command
func (s *SkillsListCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := s.environment(ctx, container)
	if err != nil {
		return err
	}
	catalog, err := container.Catalog(ctx, env, s.Repo)
	if err != nil {
		return err
	}

	if s.Category != "" {
		filtered := catalog[:0]
		for _, skill := range catalog {
			if strings.EqualFold(skill.Category, s.Category) {
				filtered = append(filtered, skill)
			}
		}
		catalog = filtered
	}

	if s.Format == "json" {
		return printJSON(catalog)
	}
	if len(catalog) == 0 {
		fmt.Println(theme.MutedStyle.Render("No skills found."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tSOURCE\tDESCRIPTION")
	for _, skill := range catalog {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", skill.Name, skill.Category, skill.SourceRepo, truncate(skill.Description, 60))
	}
	return w.Flush()
}

// SkillsFilesCmd lists the files inside a skill directory
type SkillsFilesCmd struct {
	TargetFlags
	Repo   string `help:"Skills repository (default: repo_path)"`
	Skill  string `arg:"" help:"Skill id or name"`
	Subdir string `help:"Only list files below this subdirectory"`
}

// Run executes the files command
func (s *SkillsFilesCmd) Run(container *Container) error {
	ctx := context.Background()
	env, skill, err := findSkill(ctx, container, s.TargetFlags, s.Repo, s.Skill)
	if err != nil {
		return err
	}

	var files []domain.FileEntry
	if env.Remote {
		files, err = container.RemoteService.ListSkillFiles(ctx, s.Server, skill.Path, s.Subdir)
	} else {
		files, err = env.Files.List(ctx, skill.Path, s.Subdir)
	}
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f.Name)
	}
	return nil
}

// SkillsShowCmd prints a file of a skill
type SkillsShowCmd struct {
	TargetFlags
	Skill string `arg:"" help:"Skill id or name"`
	File  string `arg:"" optional:"" help:"File relative to the skill directory" default:"SKILL.md"`
	Repo  string `help:"Skills repository (default: repo_path)"`
}

// Run executes the show command
func (s *SkillsShowCmd) Run(container *Container) error {
	ctx := context.Background()
	env, skill, err := findSkill(ctx, container, s.TargetFlags, s.Repo, s.Skill)
	if err != nil {
		return err
	}

	rel := path.Clean("/" + s.File)[1:]
	if rel == "" {
		return fmt.Errorf("invalid file %q", s.File)
	}
	target := strings.TrimRight(skill.Path, "/") + "/" + rel

	var content string
	if env.Remote {
		content, err = container.RemoteService.ReadFile(ctx, s.Server, target)
	} else {
		content, err = env.Files.Read(ctx, target)
	}
	if err != nil {
		return err
	}
	fmt.Print(content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Println()
	}
	return nil
}

// SkillsEditCmd opens a local skill in an editor
type SkillsEditCmd struct {
	Editor string `help:"Editor command (default: $SKILLPILOT_EDITOR, $VISUAL, $EDITOR)"`
	Repo   string `help:"Skills repository (default: repo_path)"`
	Skill  string `arg:"" help:"Skill id or name"`
}

// Run executes the edit command
func (s *SkillsEditCmd) Run(container *Container) error {
	_, skill, err := findSkill(context.Background(), container, TargetFlags{}, s.Repo, s.Skill)
	if err != nil {
		return err
	}
	return container.Editor.Open(skill.Path, s.Editor)
}

func findSkill(ctx context.Context, container *Container, target TargetFlags, repo, key string) (*services.Environment, *domain.Skill, error) {
	env, err := target.environment(ctx, container)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := container.Catalog(ctx, env, repo)
	if err != nil {
		return nil, nil, err
	}
	skills := domain.ResolveSkills(catalog, []string{key})
	if len(skills) == 0 {
		return nil, nil, fmt.Errorf("skill %q not found in repository", key)
	}
	return env, &skills[0], nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

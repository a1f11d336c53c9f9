package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/services"
	"github.com/skillpilot/skillpilot/internal/theme"
)

// LinksCmd inspects and reconciles skill links
type LinksCmd struct {
	Apply  LinksApplyCmd  `cmd:"apply" help:"Link the skills of a profile without removing other links"`
	Clean  LinksCleanCmd  `cmd:"clean" help:"Remove broken links"`
	List   LinksListCmd   `cmd:"list" help:"List links in a skills directory" default:"1"`
	Status LinksStatusCmd `cmd:"status" help:"Show the status of one link"`
	Sync   LinksSyncCmd   `cmd:"sync" help:"Make a skills directory match the desired links"`
	Toggle LinksToggleCmd `cmd:"toggle" help:"Link or unlink one skill"`
}

// LinksListCmd lists links
type LinksListCmd struct {
	LinkTargetFlags
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (l *LinksListCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}
	dir := env.TargetDir(l.Project)

	entries, err := container.LinkService(env).ListLinks(ctx, dir)
	if err != nil {
		return err
	}

	if l.Format == "json" {
		return printJSON(entries)
	}

	fmt.Println(theme.TitleStyle.Render(fmt.Sprintf("%s: %s", env.Name, dir)))
	if len(entries) == 0 {
		fmt.Println(theme.MutedStyle.Render("No links."))
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTARGET\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Target, theme.LinkStatus(e.Status))
	}
	return w.Flush()
}

// LinksSyncCmd reconciles a directory against desired links
type LinksSyncCmd struct {
	LinkTargetFlags
	FromProject bool     `help:"Use the saved project config for --project" name:"from-project"`
	Link        []string `help:"Desired link as name=/source/path (repeatable)" short:"l"`
	Profile     []string `help:"Profile whose skills are desired (repeatable)"`
	Repo        string   `help:"Skills repository used to resolve --skill and --profile (default: repo_path)"`
	Skill       []string `help:"Skill id or name from the repository (repeatable)"`
}

// Run executes the sync command
func (l *LinksSyncCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}

	desired, err := l.desired(ctx, container, env)
	if err != nil {
		return err
	}

	dir := env.TargetDir(l.Project)
	logging.Logger.Info("Executing links sync", "env", env.Name, "dir", dir, "desired", len(desired))
	result, err := container.LinkService(env).Reconcile(ctx, dir, desired)
	if err != nil {
		return err
	}
	return printResult(result)
}

func (l *LinksSyncCmd) desired(ctx context.Context, container *Container, env *services.Environment) (domain.DesiredLinkSet, error) {
	desired, err := parseLinks(l.Link)
	if err != nil {
		return nil, err
	}
	if len(l.Skill) == 0 && len(l.Profile) == 0 && !l.FromProject {
		return desired, nil
	}
	if l.FromProject && l.Project == "" {
		return nil, fmt.Errorf("--from-project requires --project")
	}

	catalog, err := container.Catalog(ctx, env, l.Repo)
	if err != nil {
		return nil, err
	}
	profiles := container.ProfileService(env)

	add := func(set domain.DesiredLinkSet) {
		for name, source := range set {
			if _, ok := desired[name]; !ok {
				desired[name] = source
			}
		}
	}

	if l.FromProject {
		_, set, err := profiles.ResolveProject(ctx, projectKey(env, l.Project), catalog)
		if err != nil {
			return nil, err
		}
		add(set)
	}
	for _, id := range l.Profile {
		_, set, err := profiles.ResolveProfile(ctx, id, catalog)
		if err != nil {
			return nil, err
		}
		add(set)
	}
	add(domain.DesiredFromSkills(domain.ResolveSkills(catalog, l.Skill)))
	return desired, nil
}

// LinksApplyCmd links a profile's skills, create-only
type LinksApplyCmd struct {
	LinkTargetFlags
	Profile string `arg:"" help:"Profile id or name"`
	Repo    string `help:"Skills repository (default: repo_path)"`
}

// Run executes the apply command
func (l *LinksApplyCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}
	catalog, err := container.Catalog(ctx, env, l.Repo)
	if err != nil {
		return err
	}
	profile, desired, err := container.ProfileService(env).ResolveProfile(ctx, l.Profile, catalog)
	if err != nil {
		return err
	}

	result, err := container.LinkService(env).ApplyProfile(ctx, env.TargetDir(l.Project), desired, profile.ID)
	if err != nil {
		return err
	}
	return printResult(result)
}

// LinksCleanCmd removes broken links
type LinksCleanCmd struct {
	LinkTargetFlags
}

// Run executes the clean command
func (l *LinksCleanCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}
	result, err := container.LinkService(env).CleanBroken(ctx, env.TargetDir(l.Project))
	if err != nil {
		return err
	}
	return printResult(result)
}

// LinksToggleCmd links or unlinks one skill
type LinksToggleCmd struct {
	LinkTargetFlags
	Name   string `arg:"" help:"Skill name (link name)"`
	Repo   string `help:"Skills repository used to find the source (default: repo_path)"`
	Source string `help:"Source directory; looked up in the repository when omitted"`
}

// Run executes the toggle command
func (l *LinksToggleCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}
	links := container.LinkService(env)
	dir := env.TargetDir(l.Project)

	source := l.Source
	if source == "" {
		status, err := links.LinkStatus(ctx, dir, l.Name)
		if err != nil {
			return err
		}
		if status == domain.LinkInactive {
			catalog, err := container.Catalog(ctx, env, l.Repo)
			if err != nil {
				return err
			}
			skills := domain.ResolveSkills(catalog, []string{l.Name})
			if len(skills) == 0 {
				return fmt.Errorf("skill %q not found in repository", l.Name)
			}
			source = skills[0].Path
		}
	}

	status, err := links.Toggle(ctx, dir, l.Name, source)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", l.Name, theme.LinkStatus(status))
	return nil
}

// LinksStatusCmd shows one link's status
type LinksStatusCmd struct {
	LinkTargetFlags
	Name string `arg:"" help:"Link name"`
}

// Run executes the status command
func (l *LinksStatusCmd) Run(container *Container) error {
	ctx := context.Background()
	env, err := l.environment(ctx, container)
	if err != nil {
		return err
	}
	status, err := container.LinkService(env).LinkStatus(ctx, env.TargetDir(l.Project), l.Name)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", l.Name, theme.LinkStatus(status))
	return nil
}

// parseLinks parses name=/source pairs; later pairs do not override earlier ones
func parseLinks(pairs []string) (domain.DesiredLinkSet, error) {
	desired := make(domain.DesiredLinkSet, len(pairs))
	for _, pair := range pairs {
		name, source, ok := strings.Cut(pair, "=")
		name, source = strings.TrimSpace(name), strings.TrimSpace(source)
		if !ok || name == "" || source == "" {
			return nil, fmt.Errorf("invalid --link %q: want name=/source/path", pair)
		}
		if err := domain.ValidateLinkName(name); err != nil {
			return nil, fmt.Errorf("invalid --link %q: %w", pair, err)
		}
		if _, dup := desired[name]; !dup {
			desired[name] = source
		}
	}
	return desired, nil
}

func printResult(result *domain.ReconcileResult) error {
	for _, name := range result.Removed {
		fmt.Printf("%s %s\n", theme.MutedStyle.Render("removed"), name)
	}
	for _, name := range result.Created {
		fmt.Printf("%s %s\n", theme.LinkStatus(domain.LinkActive), name)
	}
	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "failed to %s %s: %v\n", f.Op, f.Name, f.Err)
	}
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d link operation(s) failed", len(result.Failures))
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

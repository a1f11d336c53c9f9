package cmd

import (
	"context"
	"fmt"
	"time"

	adaptereditor "github.com/skillpilot/skillpilot/internal/adapters/editor"
	adapterkeychain "github.com/skillpilot/skillpilot/internal/adapters/keychain"
	adapterlocalfs "github.com/skillpilot/skillpilot/internal/adapters/localfs"
	adapterremotefs "github.com/skillpilot/skillpilot/internal/adapters/remotefs"
	adaptershell "github.com/skillpilot/skillpilot/internal/adapters/shell"
	adapterssh "github.com/skillpilot/skillpilot/internal/adapters/ssh"
	adapterstorage "github.com/skillpilot/skillpilot/internal/adapters/storage"
	"github.com/skillpilot/skillpilot/internal/config"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/paths"
	"github.com/skillpilot/skillpilot/internal/ports"
	"github.com/skillpilot/skillpilot/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	DiscoveryService *services.DiscoveryService
	RemoteService    *services.RemoteService

	Editor   ports.EditorOpener
	Settings *config.Settings
	Stats    *adapterstorage.StatsRepository

	// Internal - for cleanup only
	pool *adapterssh.Pool
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	stats, err := adapterstorage.NewStatsRepository(paths.GetStatsDBPath())
	if err != nil {
		return nil, err
	}

	var poolOpts []adapterssh.Option
	if settings.KnownHostsFile != "" {
		cb, err := adapterssh.KnownHostsCallback(settings.KnownHostsFile)
		if err != nil {
			stats.Close()
			return nil, err
		}
		poolOpts = append(poolOpts, adapterssh.WithHostKeyCallback(cb))
	} else {
		logging.Logger.Debug("No known_hosts_file configured, host keys are not verified")
	}

	secrets := adapterkeychain.NewStore()
	pool := adapterssh.NewPool(secrets, poolOpts...)
	servers := adapterstorage.NewServerRepository(paths.GetRemotesPath())

	return &Container{
		DiscoveryService: services.NewDiscoveryService(stats),
		Editor:           adaptereditor.NewOpener(),
		RemoteService:    services.NewRemoteService(servers, secrets, pool, adapterremotefs.NewFactory(pool)),
		Settings:         settings,
		Stats:            stats,
		pool:             pool,
	}, nil
}

// Close closes all resources held by the container. It is safe to call twice.
func (c *Container) Close() error {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
	if c.Stats != nil {
		err := c.Stats.Close()
		c.Stats = nil
		return err
	}
	return nil
}

// Environment returns the adapters of the local machine, of a server when serverID is set,
// or of the local machine driven through the shell protocol when loopback is set
func (c *Container) Environment(ctx context.Context, serverID string, loopback bool) (*services.Environment, error) {
	switch {
	case serverID != "" && loopback:
		return nil, fmt.Errorf("--server and --loopback are mutually exclusive")
	case serverID != "":
		return c.RemoteService.Environment(ctx, serverID)
	case loopback:
		timeout := config.IntOr(c.Settings.CommandTimeoutSecs, domain.DefaultCommandTimeoutSecs)
		runner := adaptershell.NewRunner(time.Duration(timeout) * time.Second)
		return &services.Environment{
			Config:    adapterremotefs.NewConfigStore(runner, paths.GetHome()),
			Files:     adapterremotefs.NewFiles(runner),
			Name:      "loopback",
			RepoPath:  c.Settings.RepoPath,
			Skills:    adapterremotefs.NewSkillSource(runner),
			SkillsDir: c.Settings.SkillsDir(),
			Transport: adapterremotefs.NewTransport(runner),
		}, nil
	default:
		return &services.Environment{
			Config:    adapterstorage.NewConfigStore(paths.GetHome()),
			Files:     adapterlocalfs.NewFiles(),
			Name:      "local",
			RepoPath:  c.Settings.RepoPath,
			Skills:    adapterlocalfs.NewSkillSource(c.Settings.ExcludedDirs...),
			SkillsDir: c.Settings.SkillsDir(),
			Transport: adapterlocalfs.NewTransport(),
		}, nil
	}
}

// LinkService binds the link engine to an environment's transport
func (c *Container) LinkService(env *services.Environment) *services.LinkService {
	return services.NewLinkService(env.Transport, c.Stats)
}

// ProfileService binds profile management to an environment's config store
func (c *Container) ProfileService(env *services.Environment) *services.ProfileService {
	return services.NewProfileService(env.Config)
}

// Catalog discovers the skills of repo, or of the environment's repo path
func (c *Container) Catalog(ctx context.Context, env *services.Environment, repo string) ([]domain.Skill, error) {
	if repo == "" {
		repo = env.RepoPath
	}
	if repo == "" {
		return nil, fmt.Errorf("no skills repository configured for %s: pass --repo or set repo_path", env.Name)
	}
	return c.DiscoveryService.Discover(ctx, env.Skills, repo)
}

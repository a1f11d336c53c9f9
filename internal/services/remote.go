package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

const maxParallelTests = 4

// RemoteService manages server profiles, their secrets and pooled connections
type RemoteService struct {
	factory ports.RemoteFactory
	pool    ports.SessionPool
	secrets ports.SecretStore
	servers ports.ServerRepository
}

// NewRemoteService creates a new RemoteService
func NewRemoteService(
	servers ports.ServerRepository,
	secrets ports.SecretStore,
	pool ports.SessionPool,
	factory ports.RemoteFactory,
) *RemoteService {
	return &RemoteService{
		factory: factory,
		pool:    pool,
		secrets: secrets,
		servers: servers,
	}
}

func (s *RemoteService) ListServers(ctx context.Context) ([]domain.ServerProfile, error) {
	return s.servers.List(ctx)
}

func (s *RemoteService) GetServer(ctx context.Context, id string) (*domain.ServerProfile, error) {
	return s.servers.Get(ctx, id)
}

// SaveServer validates and stores server, assigning an id when it has none.
// A pooled session of an updated server is dropped so new settings apply.
func (s *RemoteService) SaveServer(ctx context.Context, server domain.ServerProfile) (*domain.ServerProfile, error) {
	if server.ID == "" {
		server.ID = uuid.New().String()
	}
	if server.Name == "" {
		server.Name = server.Host
	}
	server.ApplyDefaults()
	if err := server.Validate(); err != nil {
		return nil, err
	}

	if err := s.servers.Save(ctx, server); err != nil {
		logging.Logger.Error("Failed to save server", "server", server.ID, "error", err)
		return nil, err
	}
	s.pool.Disconnect(server.ID)

	logging.Logger.Info("Server saved", "server", server.ID, "host", server.Host)
	return &server, nil
}

// DeleteServer removes the server, its pooled session and its stored secret
func (s *RemoteService) DeleteServer(ctx context.Context, id string) error {
	if _, err := s.servers.Get(ctx, id); err != nil {
		return err
	}
	s.pool.Disconnect(id)
	if err := s.servers.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.secrets.Delete(id); err != nil {
		logging.Logger.Warn("Failed to delete server secret", "server", id, "error", err)
	}
	logging.Logger.Info("Server deleted", "server", id)
	return nil
}

// SaveSecret stores the password or key passphrase of a server
func (s *RemoteService) SaveSecret(ctx context.Context, id, secret string) error {
	if _, err := s.servers.Get(ctx, id); err != nil {
		return err
	}
	if err := s.secrets.Set(id, secret); err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}
	s.pool.Disconnect(id)
	return nil
}

// TestConnection opens a fresh session to the server
func (s *RemoteService) TestConnection(ctx context.Context, id string) (domain.ConnectionStatus, error) {
	server, err := s.servers.Get(ctx, id)
	if err != nil {
		return domain.ConnectionStatus{}, err
	}
	status := s.pool.TestConnection(ctx, *server)
	logging.Logger.Info("Connection tested", "server", id, "status", status.String())
	return status, nil
}

// TestConnections tests every server concurrently
func (s *RemoteService) TestConnections(ctx context.Context) (map[string]domain.ConnectionStatus, error) {
	servers, err := s.servers.List(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	results := make(map[string]domain.ConnectionStatus, len(servers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelTests)
	for _, server := range servers {
		g.Go(func() error {
			status := s.pool.TestConnection(ctx, server)
			mu.Lock()
			results[server.ID] = status
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (s *RemoteService) Disconnect(id string) {
	s.pool.Disconnect(id)
}

func (s *RemoteService) ConnectionStatus(id string) domain.ConnectionStatus {
	return s.pool.Status(id)
}

// CleanupIdle evicts sessions idle past the pool timeout
func (s *RemoteService) CleanupIdle() int {
	n := s.pool.CleanupIdle()
	if n > 0 {
		logging.Logger.Debug("Evicted idle sessions", "count", n)
	}
	return n
}

// Environment binds the remote adapters of one server
func (s *RemoteService) Environment(ctx context.Context, id string) (*Environment, error) {
	server, err := s.servers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Environment{
		Config:    s.factory.ConfigStore(*server),
		Files:     s.factory.FileBrowser(*server),
		Name:      server.ID,
		Remote:    true,
		RepoPath:  server.RemoteRepoPath,
		Skills:    s.factory.SkillSource(*server),
		SkillsDir: server.RemoteSkillsDir,
		Transport: s.factory.Transport(*server),
	}, nil
}

// InitRemoteConfig creates the remote config layout and skills dir
func (s *RemoteService) InitRemoteConfig(ctx context.Context, id string) error {
	server, err := s.servers.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.factory.ConfigStore(*server).Init(ctx, server.RemoteSkillsDir); err != nil {
		logging.Logger.Error("Failed to initialize remote config", "server", id, "error", err)
		return err
	}
	logging.Logger.Info("Remote config initialized", "server", id, "dir", server.RemoteConfigDir)
	return nil
}

// ListSkillFiles lists the files of a skill directory on the server
func (s *RemoteService) ListSkillFiles(ctx context.Context, id, dir, subdir string) ([]domain.FileEntry, error) {
	server, err := s.servers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.factory.FileBrowser(*server).List(ctx, dir, subdir)
}

// ReadFile returns a file's content from the server
func (s *RemoteService) ReadFile(ctx context.Context, id, path string) (string, error) {
	server, err := s.servers.Get(ctx, id)
	if err != nil {
		return "", err
	}
	content, err := s.factory.FileBrowser(*server).Read(ctx, path)
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		logging.Logger.Debug("Remote read failed", "server", id, "path", path, "stderr", cmdErr.Stderr)
	}
	return content, err
}

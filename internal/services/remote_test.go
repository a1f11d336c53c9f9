package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillpilot/skillpilot/internal/domain"
	portsmocks "github.com/skillpilot/skillpilot/internal/ports/mocks"
)

type remoteMocks struct {
	factory *portsmocks.MockRemoteFactory
	pool    *portsmocks.MockSessionPool
	secrets *portsmocks.MockSecretStore
	servers *portsmocks.MockServerRepository
}

func newRemoteService(t *testing.T) (*RemoteService, remoteMocks) {
	m := remoteMocks{
		factory: portsmocks.NewMockRemoteFactory(t),
		pool:    portsmocks.NewMockSessionPool(t),
		secrets: portsmocks.NewMockSecretStore(t),
		servers: portsmocks.NewMockServerRepository(t),
	}
	return NewRemoteService(m.servers, m.secrets, m.pool, m.factory), m
}

func testServer() *domain.ServerProfile {
	s := domain.ServerProfile{ID: "s1", Name: "box", Host: "box.local", Username: "dev"}
	s.ApplyDefaults()
	return &s
}

func TestSaveServer_AppliesDefaults(t *testing.T) {
	service, m := newRemoteService(t)
	m.servers.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.ServerProfile) bool {
		return s.ID != "" && s.Port == 22 && s.Name == "box.local" && s.Auth.Type == domain.AuthAgent
	})).Return(nil)
	m.pool.EXPECT().Disconnect(mock.Anything).Return()

	saved, err := service.SaveServer(context.Background(), domain.ServerProfile{Host: "box.local", Username: "dev"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestSaveServer_Invalid(t *testing.T) {
	service, _ := newRemoteService(t)

	_, err := service.SaveServer(context.Background(), domain.ServerProfile{Host: "box.local"})
	assert.Error(t, err)
}

func TestDeleteServer_RemovesSecret(t *testing.T) {
	service, m := newRemoteService(t)
	m.servers.EXPECT().Get(mock.Anything, "s1").Return(testServer(), nil)
	m.pool.EXPECT().Disconnect("s1").Return()
	m.servers.EXPECT().Delete(mock.Anything, "s1").Return(nil)
	m.secrets.EXPECT().Delete("s1").Return(nil)

	require.NoError(t, service.DeleteServer(context.Background(), "s1"))
}

func TestDeleteServer_SecretFailureIsLogged(t *testing.T) {
	service, m := newRemoteService(t)
	m.servers.EXPECT().Get(mock.Anything, "s1").Return(testServer(), nil)
	m.pool.EXPECT().Disconnect("s1").Return()
	m.servers.EXPECT().Delete(mock.Anything, "s1").Return(nil)
	m.secrets.EXPECT().Delete("s1").Return(errors.New("keychain locked"))

	assert.NoError(t, service.DeleteServer(context.Background(), "s1"))
}

func TestDeleteServer_NotFound(t *testing.T) {
	service, m := newRemoteService(t)
	m.servers.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.ErrServerNotFound)

	assert.ErrorIs(t, service.DeleteServer(context.Background(), "nope"), domain.ErrServerNotFound)
}

func TestSaveSecret_DropsSession(t *testing.T) {
	service, m := newRemoteService(t)
	m.servers.EXPECT().Get(mock.Anything, "s1").Return(testServer(), nil)
	m.secrets.EXPECT().Set("s1", "hunter2").Return(nil)
	m.pool.EXPECT().Disconnect("s1").Return()

	require.NoError(t, service.SaveSecret(context.Background(), "s1", "hunter2"))
}

func TestTestConnections(t *testing.T) {
	service, m := newRemoteService(t)
	a := domain.ServerProfile{ID: "a", Host: "a", Username: "u"}
	b := domain.ServerProfile{ID: "b", Host: "b", Username: "u"}
	m.servers.EXPECT().List(mock.Anything).Return([]domain.ServerProfile{a, b}, nil)
	m.pool.EXPECT().TestConnection(mock.Anything, a).Return(domain.ConnectionStatus{State: domain.StateConnected})
	m.pool.EXPECT().TestConnection(mock.Anything, b).Return(domain.ConnectionStatus{State: domain.StateError, Message: "refused"})

	results, err := service.TestConnections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.ConnectionStatus{
		"a": {State: domain.StateConnected},
		"b": {State: domain.StateError, Message: "refused"},
	}, results)
}

func TestEnvironment(t *testing.T) {
	service, m := newRemoteService(t)
	server := testServer()
	server.RemoteRepoPath = "~/skills-repo"
	transport := portsmocks.NewMockLinkTransport(t)
	config := portsmocks.NewMockRemoteConfigStore(t)
	files := portsmocks.NewMockFileBrowser(t)
	source := portsmocks.NewMockSkillSource(t)

	m.servers.EXPECT().Get(mock.Anything, "s1").Return(server, nil)
	m.factory.EXPECT().Transport(*server).Return(transport)
	m.factory.EXPECT().ConfigStore(*server).Return(config)
	m.factory.EXPECT().FileBrowser(*server).Return(files)
	m.factory.EXPECT().SkillSource(*server).Return(source)

	env, err := service.Environment(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, env.Remote)
	assert.Equal(t, "~/skills-repo", env.RepoPath)
	assert.Equal(t, "~/.claude/skills", env.TargetDir(""))
	assert.Equal(t, "/srv/app/.claude/skills", env.TargetDir("/srv/app/"))
}

func TestInitRemoteConfig(t *testing.T) {
	service, m := newRemoteService(t)
	server := testServer()
	config := portsmocks.NewMockRemoteConfigStore(t)

	m.servers.EXPECT().Get(mock.Anything, "s1").Return(server, nil)
	m.factory.EXPECT().ConfigStore(*server).Return(config)
	config.EXPECT().Init(mock.Anything, "~/.claude/skills").Return(nil)

	require.NoError(t, service.InitRemoteConfig(context.Background(), "s1"))
}

func TestReadFile_PreservesCommandError(t *testing.T) {
	service, m := newRemoteService(t)
	server := testServer()
	files := portsmocks.NewMockFileBrowser(t)

	m.servers.EXPECT().Get(mock.Anything, "s1").Return(server, nil)
	m.factory.EXPECT().FileBrowser(*server).Return(files)
	files.EXPECT().Read(mock.Anything, "/x/SKILL.md").Return("", &domain.CommandError{ExitCode: 1, Stderr: "cat: /x/SKILL.md: No such file or directory"})

	_, err := service.ReadFile(context.Background(), "s1", "/x/SKILL.md")
	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "cat: /x/SKILL.md: No such file or directory", cmdErr.Stderr)
}

package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// RemoteConfigStore is a ConfigStore living on a server
type RemoteConfigStore interface {
	ConfigStore
	// Init creates the config layout and the remote skills directory
	Init(ctx context.Context, skillsDir string) error
}

// RemoteFactory builds the adapters that operate on one server
type RemoteFactory interface {
	ConfigStore(server domain.ServerProfile) RemoteConfigStore
	FileBrowser(server domain.ServerProfile) FileBrowser
	SkillSource(server domain.ServerProfile) SkillSource
	Transport(server domain.ServerProfile) LinkTransport
}

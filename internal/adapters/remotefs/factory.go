package remotefs

import (
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Factory binds remote adapters to pooled runners
type Factory struct {
	runners ports.RunnerFactory
}

var _ ports.RemoteFactory = (*Factory)(nil)

func NewFactory(runners ports.RunnerFactory) *Factory {
	return &Factory{runners: runners}
}

func (f *Factory) ConfigStore(server domain.ServerProfile) ports.RemoteConfigStore {
	return NewConfigStore(f.runners.RunnerFor(server), server.RemoteConfigDir)
}

func (f *Factory) FileBrowser(server domain.ServerProfile) ports.FileBrowser {
	return NewFiles(f.runners.RunnerFor(server))
}

func (f *Factory) SkillSource(server domain.ServerProfile) ports.SkillSource {
	return NewSkillSource(f.runners.RunnerFor(server))
}

func (f *Factory) Transport(server domain.ServerProfile) ports.LinkTransport {
	return NewTransport(f.runners.RunnerFor(server))
}

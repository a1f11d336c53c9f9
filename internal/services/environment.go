package services

import (
	"github.com/skillpilot/skillpilot/internal/paths"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Environment is the set of adapters that operate on one machine
type Environment struct {
	Config    ports.ConfigStore
	Files     ports.FileBrowser
	Name      string
	Remote    bool
	RepoPath  string
	Skills    ports.SkillSource
	SkillsDir string
	Transport ports.LinkTransport
}

// TargetDir is the user-level skills dir, or the project-level one when projectPath is set
func (e *Environment) TargetDir(projectPath string) string {
	switch {
	case projectPath == "":
		return e.SkillsDir
	case e.Remote:
		return paths.RemoteProjectSkillsDir(projectPath)
	default:
		return paths.ProjectSkillsDir(paths.ExpandPath(projectPath))
	}
}

package shellproto

import (
	"path"
	"strings"
)

const (
	submoduleHeader = `[submodule "`
	submodulePath   = "path = "
)

// ParseSubmodules reads a .gitmodules manifest.
// Each submodule is recorded under both its name and its path, mapped to
// the absolute path under repoRoot.
func ParseSubmodules(content, repoRoot string) map[string]string {
	modules := make(map[string]string)
	var name, subPath string
	var haveName, havePath bool

	flush := func() {
		if haveName && havePath {
			abs := path.Join(repoRoot, subPath)
			modules[subPath] = abs
			modules[name] = abs
		}
		haveName, havePath = false, false
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "[submodule "):
			flush()
			if rest, ok := strings.CutPrefix(line, submoduleHeader); ok {
				name, haveName = strings.CutSuffix(rest, `"]`)
			}
		case strings.HasPrefix(line, submodulePath):
			subPath, havePath = strings.TrimPrefix(line, submodulePath), true
		}
	}
	flush()
	return modules
}

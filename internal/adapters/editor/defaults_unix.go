//go:build !windows

package editor

var defaultEditors = []string{
	"code",
	"code-insiders",
	"cursor",
	"codium",
	"subl",
	"zed",
	"vi",
}

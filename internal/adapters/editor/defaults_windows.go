//go:build windows

package editor

var defaultEditors = []string{
	"code.cmd",
	"code-insiders.cmd",
	"cursor.cmd",
	"notepad.exe",
}

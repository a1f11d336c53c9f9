// Package shellproto builds the shell commands sent to remote servers and
// parses their text output back into structured values.
package shellproto

import "strings"

// ShellEscape wraps s in single quotes so the shell reads it as one token
func ShellEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// EscapePath escapes a remote path, keeping a leading ~ expandable.
// "~" becomes "$HOME" and "~/rest" becomes "$HOME"/'rest'.
func EscapePath(p string) string {
	switch {
	case p == "~":
		return `"$HOME"`
	case strings.HasPrefix(p, "~/"):
		return `"$HOME"/` + ShellEscape(p[2:])
	default:
		return ShellEscape(p)
	}
}

// SlotPath joins a directory and a link name with a single slash
func SlotPath(dir, name string) string {
	return strings.TrimRight(dir, "/") + "/" + name
}

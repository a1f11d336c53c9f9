package shellproto

import (
	"fmt"
	"strings"
)

const (
	ExistsToken     = "exists"
	MissingToken    = "broken"
	HeredocSentinel = "SKILLPILOT_EOF"
)

// ExcludedDirs are skipped by skill discovery
var ExcludedDirs = []string{
	".git", "node_modules", ".cursor", ".gemini", ".codex",
	".continue", ".idea", "target", ".vscode",
}

// Batch joins commands so that each runs only if the previous succeeded
func Batch(commands ...string) string {
	return strings.Join(commands, " && ")
}

// MkdirCommand creates dir and its parents
func MkdirCommand(dir string) string {
	return "mkdir -p " + EscapePath(dir)
}

// LinkCommand creates dir if needed and points dir/name at source
func LinkCommand(source, dir, name string) string {
	return Batch(
		MkdirCommand(dir),
		fmt.Sprintf("ln -sf %s %s", EscapePath(source), EscapePath(SlotPath(dir, name))),
	)
}

// RemoveCommand removes the file or symlink at p
func RemoveCommand(p string) string {
	return "rm -f " + EscapePath(p)
}

// ListCommand lists dir; a missing dir yields empty output and success
func ListCommand(dir string) string {
	return fmt.Sprintf("ls -la %s 2>/dev/null || true", EscapePath(dir))
}

// BrokenLinksCommand prints the paths of dangling symlinks directly under dir
func BrokenLinksCommand(dir string) string {
	return fmt.Sprintf(`find %s -maxdepth 1 -type l ! -exec test -e {} \; -print 2>/dev/null || true`, EscapePath(dir))
}

// ExistsCommand echoes ExistsToken or MissingToken depending on whether p resolves
func ExistsCommand(p string) string {
	return fmt.Sprintf("test -e %s && echo '%s' || echo '%s'", EscapePath(p), ExistsToken, MissingToken)
}

// SkillDumpCommand prints every SKILL.md under repo as a SkillSeparator batch
func SkillDumpCommand(repo string) string {
	var b strings.Builder
	b.WriteString("find ")
	b.WriteString(EscapePath(repo))
	b.WriteString(" -name 'SKILL.md'")
	for _, dir := range ExcludedDirs {
		fmt.Fprintf(&b, " -not -path '*/%s/*'", dir)
	}
	fmt.Fprintf(&b, ` -exec sh -c 'echo "%s" && echo "%s$0" && cat "$0"' {} \;`, SkillSeparator, pathMarker)
	return b.String()
}

// HomeCommand prints the login user's home directory
const HomeCommand = `printf '%s\n' "$HOME"`

// SubmodulesCommand prints repo/.gitmodules, or nothing
func SubmodulesCommand(repo string) string {
	return fmt.Sprintf("cat %s 2>/dev/null || true", EscapePath(SlotPath(repo, ".gitmodules")))
}

// ReadFileCommand prints the file at p
func ReadFileCommand(p string) string {
	return "cat " + EscapePath(p)
}

// ReadWithDefaultCommand prints the file at p, or def when it cannot be read
func ReadWithDefaultCommand(p, def string) string {
	return fmt.Sprintf("cat %s 2>/dev/null || echo %s", EscapePath(p), ShellEscape(def))
}

// HeredocWriteCommand overwrites p with content using a quoted here-document
func HeredocWriteCommand(p, content string) (string, error) {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimRight(line, "\r") == HeredocSentinel {
			return "", fmt.Errorf("content contains the here-document terminator %s", HeredocSentinel)
		}
	}
	return fmt.Sprintf("cat > %s << '%s'\n%s\n%s", EscapePath(p), HeredocSentinel, content, HeredocSentinel), nil
}

// InitConfigCommand prepares the remote config and skills directories
func InitConfigCommand(configDir, skillsDir string) string {
	projects := EscapePath(SlotPath(configDir, "projects.json"))
	return Batch(
		MkdirCommand(SlotPath(configDir, "profiles")),
		MkdirCommand(skillsDir),
		fmt.Sprintf("test -f %s || echo '[]' > %s", projects, projects),
	)
}

// ProfileDumpCommand prints every profiles/*.json under configDir as a ProfileSeparator batch
func ProfileDumpCommand(configDir string) string {
	return fmt.Sprintf(`for f in %s/profiles/*.json; do [ -f "$f" ] && echo '%s' && cat "$f"; done 2>/dev/null || true`,
		EscapePath(configDir), ProfileSeparator)
}

// ListFilesCommand prints the non-hidden files under dir, sorted
func ListFilesCommand(dir string) string {
	return fmt.Sprintf("find %s -type f -not -name '.*' 2>/dev/null | sort || true", EscapePath(dir))
}

// ParseLines splits command output into trimmed, non-empty lines
func ParseLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

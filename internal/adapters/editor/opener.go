package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

var _ ports.EditorOpener = (*Opener)(nil)

// Opener implements ports.EditorOpener
type Opener struct {
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath}
}

// Open opens path in an editor and waits for it to exit.
// Priority: editor → $SKILLPILOT_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, editor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	name, args := o.findEditor(editor)
	if name == "" {
		return fmt.Errorf("no suitable editor found. Set --editor, $SKILLPILOT_EDITOR, $VISUAL, or $EDITOR")
	}
	args = append(args, path)

	logging.Logger.Info("Opening editor", "editor", name, "path", path)

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", name, err)
	}
	return nil
}

// findEditor returns the editor binary and its leading arguments.
// Values like "code --wait" are split on whitespace.
func (o *Opener) findEditor(editor string) (string, []string) {
	candidates := []string{
		editor,
		os.Getenv("SKILLPILOT_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	}
	for _, c := range candidates {
		if fields := strings.Fields(c); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	for _, name := range defaultEditors {
		if _, err := o.lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

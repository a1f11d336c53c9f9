package remotefs

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillpilot/skillpilot/internal/adapters/shellproto"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Files browses skill directories on a server
type Files struct {
	runner ports.CommandRunner
}

var _ ports.FileBrowser = (*Files)(nil)

func NewFiles(runner ports.CommandRunner) *Files {
	return &Files{runner: runner}
}

// List returns the non-hidden files under dir (or dir/subdir), named relative to it
func (f *Files) List(ctx context.Context, dir, subdir string) ([]domain.FileEntry, error) {
	if subdir != "" {
		dir = shellproto.SlotPath(dir, subdir)
	}
	res, err := f.runner.Run(ctx, shellproto.ListFilesCommand(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", dir, err)
	}

	prefix := strings.TrimRight(dir, "/") + "/"
	entries := []domain.FileEntry{}
	for _, line := range shellproto.ParseLines(res.Stdout) {
		entries = append(entries, domain.FileEntry{
			Name: strings.TrimPrefix(line, prefix),
			Path: line,
		})
	}
	return entries, nil
}

// Read returns the content of the file at p
func (f *Files) Read(ctx context.Context, p string) (string, error) {
	res, err := f.runner.Run(ctx, shellproto.ReadFileCommand(p))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	return res.Checked()
}

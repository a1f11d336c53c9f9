package localfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Files browses skill directories on the local machine
type Files struct{}

var _ ports.FileBrowser = (*Files)(nil)

func NewFiles() *Files {
	return &Files{}
}

// List walks dir (or dir/subdir) and returns regular files whose name does not start with a dot
func (f *Files) List(ctx context.Context, dir, subdir string) ([]domain.FileEntry, error) {
	if subdir != "" {
		dir = filepath.Join(dir, subdir)
	}

	entries := []domain.FileEntry{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtrees are skipped like find's suppressed errors
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil
		}
		entries = append(entries, domain.FileEntry{Name: filepath.ToSlash(rel), Path: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files in %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (f *Files) Read(ctx context.Context, p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}
	return string(data), nil
}

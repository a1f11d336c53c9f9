package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// FileBrowser lists and reads files inside skill directories
type FileBrowser interface {
	// List returns the non-hidden files under dir (or dir/subdir), sorted by path
	List(ctx context.Context, dir, subdir string) ([]domain.FileEntry, error)
	Read(ctx context.Context, path string) (string, error)
}

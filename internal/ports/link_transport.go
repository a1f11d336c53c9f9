package ports

import (
	"context"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// LinkReader observes link slots in a target directory
type LinkReader interface {
	// Broken returns the names of symlinks in dir whose target does not resolve
	Broken(ctx context.Context, dir string) ([]string, error)

	// List returns symlinks and real directories in dir, sorted case-insensitively.
	// A missing dir yields an empty listing.
	List(ctx context.Context, dir string) ([]domain.LinkEntry, error)

	// ReadTarget returns the raw target of the symlink at dir/name
	ReadTarget(ctx context.Context, name, dir string) (string, error)

	// Status derives the status of one slot from a fresh observation
	Status(ctx context.Context, name, dir string) (domain.LinkStatus, error)
}

// LinkWriter mutates link slots in a target directory
type LinkWriter interface {
	// Create points dir/name at source, replacing an existing symlink.
	// Fails with domain.ErrRealDirectory when a real directory occupies the slot.
	Create(ctx context.Context, name, source, dir string) error

	// Remove deletes dir/name only when it is a symlink.
	// Fails with domain.ErrNotSymlink otherwise; a missing slot is not an error.
	Remove(ctx context.Context, name, dir string) error
}

// LinkTransport is the capability shared by the local and remote transports
type LinkTransport interface {
	LinkReader
	LinkWriter
}

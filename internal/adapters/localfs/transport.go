package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Transport implements ports.LinkTransport with direct filesystem calls
type Transport struct{}

var _ ports.LinkTransport = (*Transport)(nil)

// NewTransport creates a local link transport
func NewTransport() *Transport {
	return &Transport{}
}

// List returns the symlinks and real directories in dir
func (t *Transport) List(ctx context.Context, dir string) ([]domain.LinkEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.LinkEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	entries := make([]domain.LinkEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		full := filepath.Join(dir, de.Name())
		switch {
		case de.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(full)
			if err != nil {
				logging.Logger.Warn("Failed to read symlink", "path", full, "error", err)
				continue
			}
			entries = append(entries, domain.LinkEntry{
				Name:   de.Name(),
				Target: target,
				Status: domain.DeriveStatus(domain.EntrySymlink, targetExists(full)),
			})
		case de.IsDir():
			entries = append(entries, domain.LinkEntry{
				Name:   de.Name(),
				Status: domain.LinkDirect,
			})
		}
	}

	domain.SortEntries(entries)
	return entries, nil
}

// Create points dir/name at source, replacing an existing symlink in one rename
func (t *Transport) Create(ctx context.Context, name, source, dir string) error {
	if err := domain.ValidateLinkName(name); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: dir, Err: err}
	}
	slot := filepath.Join(dir, name)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
	}

	kind, err := entryKind(slot)
	if err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
	}

	switch kind {
	case domain.EntryDirectory:
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: domain.ErrRealDirectory}
	case domain.EntryFile:
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: domain.ErrSlotOccupied}
	case domain.EntrySymlink:
		tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", name, uuid.NewString()))
		if err := os.Symlink(source, tmp); err != nil {
			return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
		}
		if err := os.Rename(tmp, slot); err != nil {
			_ = os.Remove(tmp)
			return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
		}
	default:
		if err := os.Symlink(source, slot); err != nil {
			return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
		}
	}

	logging.Logger.Debug("Link created", "name", name, "source", source, "dir", dir)
	return nil
}

// Remove deletes dir/name if it is a symlink
func (t *Transport) Remove(ctx context.Context, name, dir string) error {
	if err := domain.ValidateLinkName(name); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: dir, Err: err}
	}
	slot := filepath.Join(dir, name)

	kind, err := entryKind(slot)
	if err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: err}
	}
	switch kind {
	case domain.EntryNone:
		return nil
	case domain.EntrySymlink:
	default:
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: domain.ErrNotSymlink}
	}

	if err := os.Remove(slot); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: err}
	}

	logging.Logger.Debug("Link removed", "name", name, "dir", dir)
	return nil
}

// ReadTarget returns the raw target of dir/name
func (t *Transport) ReadTarget(ctx context.Context, name, dir string) (string, error) {
	slot := filepath.Join(dir, name)
	target, err := os.Readlink(slot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", slot, fs.ErrNotExist)
		}
		return "", fmt.Errorf("%s: %w", slot, domain.ErrNotSymlink)
	}
	return target, nil
}

// Status observes dir/name and derives its status
func (t *Transport) Status(ctx context.Context, name, dir string) (domain.LinkStatus, error) {
	slot := filepath.Join(dir, name)
	kind, err := entryKind(slot)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", slot, err)
	}
	return domain.DeriveStatus(kind, kind == domain.EntrySymlink && targetExists(slot)), nil
}

// Broken returns the names of dangling symlinks in dir
func (t *Transport) Broken(ctx context.Context, dir string) ([]string, error) {
	entries, err := t.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Status == domain.LinkBroken {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

func entryKind(p string) (domain.EntryKind, error) {
	info, err := os.Lstat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EntryNone, nil
		}
		return domain.EntryNone, err
	}
	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		return domain.EntrySymlink, nil
	case mode.IsDir():
		return domain.EntryDirectory, nil
	default:
		return domain.EntryFile, nil
	}
}

// targetExists follows the symlink at p
func targetExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

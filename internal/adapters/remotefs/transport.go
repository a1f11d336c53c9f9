package remotefs

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/skillpilot/skillpilot/internal/adapters/shellproto"
	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Transport implements ports.LinkTransport by sending shell commands
// through a CommandRunner and parsing their text output.
type Transport struct {
	runner ports.CommandRunner
}

var _ ports.LinkTransport = (*Transport)(nil)

// NewTransport creates a remote link transport over runner
func NewTransport(runner ports.CommandRunner) *Transport {
	return &Transport{runner: runner}
}

func (t *Transport) exec(ctx context.Context, command string) (string, error) {
	res, err := t.runner.Run(ctx, command)
	if err != nil {
		return "", err
	}
	return res.Checked()
}

// List lists dir and checks every symlink target with one extra round trip
func (t *Transport) List(ctx context.Context, dir string) ([]domain.LinkEntry, error) {
	listing, err := t.listing(ctx, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LinkEntry, 0, len(listing))
	for _, le := range listing {
		exists := false
		if le.IsSymlink() {
			exists, err = t.exists(ctx, shellproto.SlotPath(dir, le.Name))
			if err != nil {
				return nil, err
			}
		}
		entries = append(entries, domain.LinkEntry{
			Name:   le.Name,
			Target: le.Target,
			Status: domain.DeriveStatus(le.Kind, exists),
		})
	}

	domain.SortEntries(entries)
	return entries, nil
}

// Create points dir/name at source; an existing symlink is removed in the same command
func (t *Transport) Create(ctx context.Context, name, source, dir string) error {
	if err := domain.ValidateLinkName(name); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: dir, Err: err}
	}
	slot := shellproto.SlotPath(dir, name)

	current, err := t.probe(ctx, name, dir)
	if err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
	}

	command := shellproto.LinkCommand(source, dir, name)
	switch current.Kind {
	case domain.EntryDirectory:
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: domain.ErrRealDirectory}
	case domain.EntrySymlink:
		// ln -sf would follow a symlink to a directory and link inside it
		command = shellproto.Batch(shellproto.RemoveCommand(slot), command)
	case domain.EntryNone:
		occupied, err := t.exists(ctx, slot)
		if err != nil {
			return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
		}
		if occupied {
			return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: domain.ErrSlotOccupied}
		}
	}

	if _, err := t.exec(ctx, command); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpCreate, Path: slot, Err: err}
	}

	logging.Logger.Debug("Remote link created", "name", name, "source", source, "dir", dir)
	return nil
}

// Remove deletes dir/name after the listing proved it is a symlink
func (t *Transport) Remove(ctx context.Context, name, dir string) error {
	if err := domain.ValidateLinkName(name); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: dir, Err: err}
	}
	slot := shellproto.SlotPath(dir, name)

	current, err := t.probe(ctx, name, dir)
	if err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: err}
	}
	switch current.Kind {
	case domain.EntryNone:
		occupied, err := t.exists(ctx, slot)
		if err != nil {
			return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: err}
		}
		if !occupied {
			return nil
		}
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: domain.ErrNotSymlink}
	case domain.EntryDirectory:
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: domain.ErrNotSymlink}
	}

	if _, err := t.exec(ctx, shellproto.RemoveCommand(slot)); err != nil {
		return &domain.LinkError{Name: name, Op: domain.OpRemove, Path: slot, Err: err}
	}

	logging.Logger.Debug("Remote link removed", "name", name, "dir", dir)
	return nil
}

// ReadTarget returns the target printed by the listing for dir/name
func (t *Transport) ReadTarget(ctx context.Context, name, dir string) (string, error) {
	slot := shellproto.SlotPath(dir, name)
	current, err := t.probe(ctx, name, dir)
	if err != nil {
		return "", err
	}
	switch current.Kind {
	case domain.EntrySymlink:
		return current.Target, nil
	case domain.EntryNone:
		return "", fmt.Errorf("%s: %w", slot, fs.ErrNotExist)
	default:
		return "", fmt.Errorf("%s: %w", slot, domain.ErrNotSymlink)
	}
}

// Status lists dir and, for a symlink, checks its target
func (t *Transport) Status(ctx context.Context, name, dir string) (domain.LinkStatus, error) {
	current, err := t.probe(ctx, name, dir)
	if err != nil {
		return "", err
	}
	exists := false
	if current.IsSymlink() {
		exists, err = t.exists(ctx, shellproto.SlotPath(dir, name))
		if err != nil {
			return "", err
		}
	}
	return domain.DeriveStatus(current.Kind, exists), nil
}

// Broken returns the names of dangling symlinks found by find
func (t *Transport) Broken(ctx context.Context, dir string) ([]string, error) {
	out, err := t.exec(ctx, shellproto.BrokenLinksCommand(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to find broken links in %s: %w", dir, err)
	}
	var names []string
	for _, line := range shellproto.ParseLines(out) {
		names = append(names, path.Base(line))
	}
	return names, nil
}

func (t *Transport) listing(ctx context.Context, dir string) ([]shellproto.ListingEntry, error) {
	out, err := t.exec(ctx, shellproto.ListCommand(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	return shellproto.ParseListing(out), nil
}

// probe returns the listing entry for name, or a zero entry of kind EntryNone.
// The listing omits regular files, so EntryNone may still be an occupied slot.
func (t *Transport) probe(ctx context.Context, name, dir string) (shellproto.ListingEntry, error) {
	listing, err := t.listing(ctx, dir)
	if err != nil {
		return shellproto.ListingEntry{}, err
	}
	for _, le := range listing {
		if le.Name == name {
			return le, nil
		}
	}
	return shellproto.ListingEntry{Kind: domain.EntryNone}, nil
}

func (t *Transport) exists(ctx context.Context, p string) (bool, error) {
	out, err := t.exec(ctx, shellproto.ExistsCommand(p))
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", p, err)
	}
	ok, err := shellproto.ParseExistsToken(out)
	if err != nil {
		return false, fmt.Errorf("unexpected output checking %s: %w", p, err)
	}
	return ok, nil
}

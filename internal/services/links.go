package services

import (
	"context"
	"fmt"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/logging"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// LinkService reconciles skill links in a directory through one transport
type LinkService struct {
	stats     ports.StatsRecorder
	transport ports.LinkTransport
}

// NewLinkService creates a new LinkService
func NewLinkService(transport ports.LinkTransport, stats ports.StatsRecorder) *LinkService {
	return &LinkService{
		stats:     stats,
		transport: transport,
	}
}

// Reconcile converges dir to desired: symlinks not in desired are removed, then every
// desired link is created or updated. Per-name failures are collected, not returned.
func (s *LinkService) Reconcile(ctx context.Context, dir string, desired domain.DesiredLinkSet) (*domain.ReconcileResult, error) {
	logging.Logger.Info("Reconciling links", "dir", dir, "desired", len(desired))

	current, err := s.transport.List(ctx, dir)
	if err != nil {
		logging.Logger.Error("Failed to list links", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	result := &domain.ReconcileResult{}
	for _, entry := range current {
		if !entry.IsSymlink() {
			continue
		}
		if _, wanted := desired[entry.Name]; wanted {
			continue
		}
		s.remove(ctx, result, entry.Name, dir)
	}

	s.createAll(ctx, result, dir, desired)
	s.recordCounts(ctx, result)

	logging.Logger.Info("Reconcile finished",
		"dir", dir,
		"created", len(result.Created),
		"removed", len(result.Removed),
		"failed", len(result.Failures))
	return result, nil
}

// ApplyProfile creates every desired link without removing anything else.
// A non-empty profileID is counted as a profile application.
func (s *LinkService) ApplyProfile(ctx context.Context, dir string, desired domain.DesiredLinkSet, profileID string) (*domain.ReconcileResult, error) {
	logging.Logger.Info("Applying profile links", "dir", dir, "profile", profileID, "desired", len(desired))

	result := &domain.ReconcileResult{}
	s.createAll(ctx, result, dir, desired)
	s.recordCounts(ctx, result)

	if profileID != "" {
		if err := s.stats.RecordProfileApply(ctx, profileID); err != nil {
			logging.Logger.Warn("Failed to record profile apply", "profile", profileID, "error", err)
		}
	}
	return result, nil
}

// CleanBroken removes the symlinks in dir whose target no longer exists
func (s *LinkService) CleanBroken(ctx context.Context, dir string) (*domain.ReconcileResult, error) {
	broken, err := s.transport.Broken(ctx, dir)
	if err != nil {
		logging.Logger.Error("Failed to find broken links", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to find broken links in %s: %w", dir, err)
	}

	result := &domain.ReconcileResult{}
	for _, name := range broken {
		s.remove(ctx, result, name, dir)
	}

	if n := len(result.Removed); n > 0 {
		if err := s.stats.RecordBrokenCleaned(ctx, n); err != nil {
			logging.Logger.Warn("Failed to record broken cleanup", "error", err)
		}
	}
	logging.Logger.Info("Broken links cleaned", "dir", dir, "removed", len(result.Removed))
	return result, nil
}

// Toggle flips one slot from current observation: a symlink is removed (Inactive),
// an empty slot is linked to source (Active). A real directory is refused.
func (s *LinkService) Toggle(ctx context.Context, dir, name, source string) (domain.LinkStatus, error) {
	status, err := s.transport.Status(ctx, name, dir)
	if err != nil {
		return "", err
	}

	var next domain.LinkStatus
	switch status {
	case domain.LinkDirect:
		return status, &domain.LinkError{Name: name, Op: domain.OpCreate, Path: dir, Err: domain.ErrRealDirectory}
	case domain.LinkActive, domain.LinkBroken:
		if err := s.transport.Remove(ctx, name, dir); err != nil {
			return status, err
		}
		next = domain.LinkInactive
		s.record(ctx, s.stats.RecordLinksRemoved, 1)
	default:
		if source == "" {
			return status, fmt.Errorf("no source path for %q", name)
		}
		if err := s.transport.Create(ctx, name, source, dir); err != nil {
			return status, err
		}
		next = domain.LinkActive
		s.record(ctx, s.stats.RecordLinksCreated, 1)
	}

	if err := s.stats.RecordToggle(ctx, name); err != nil {
		logging.Logger.Warn("Failed to record toggle", "name", name, "error", err)
	}
	logging.Logger.Info("Link toggled", "dir", dir, "name", name, "from", status, "to", next)
	return next, nil
}

// ListLinks returns the current entries of dir
func (s *LinkService) ListLinks(ctx context.Context, dir string) ([]domain.LinkEntry, error) {
	return s.transport.List(ctx, dir)
}

// LinkStatus observes the status of one slot
func (s *LinkService) LinkStatus(ctx context.Context, dir, name string) (domain.LinkStatus, error) {
	return s.transport.Status(ctx, name, dir)
}

func (s *LinkService) createAll(ctx context.Context, result *domain.ReconcileResult, dir string, desired domain.DesiredLinkSet) {
	for _, name := range desired.Names() {
		if err := s.transport.Create(ctx, name, desired[name], dir); err != nil {
			logging.Logger.Warn("Failed to link skill", "name", name, "source", desired[name], "error", err)
			result.Failures = append(result.Failures, domain.LinkFailure{Name: name, Op: domain.OpCreate, Err: err})
			continue
		}
		result.Created = append(result.Created, name)
	}
}

func (s *LinkService) remove(ctx context.Context, result *domain.ReconcileResult, name, dir string) {
	if err := s.transport.Remove(ctx, name, dir); err != nil {
		logging.Logger.Warn("Failed to remove link", "name", name, "error", err)
		result.Failures = append(result.Failures, domain.LinkFailure{Name: name, Op: domain.OpRemove, Err: err})
		return
	}
	result.Removed = append(result.Removed, name)
}

func (s *LinkService) recordCounts(ctx context.Context, result *domain.ReconcileResult) {
	s.record(ctx, s.stats.RecordLinksCreated, len(result.Created))
	s.record(ctx, s.stats.RecordLinksRemoved, len(result.Removed))
}

func (s *LinkService) record(ctx context.Context, fn func(context.Context, int) error, n int) {
	if n == 0 {
		return
	}
	if err := fn(ctx, n); err != nil {
		logging.Logger.Warn("Failed to record link stats", "count", n, "error", err)
	}
}

package domain

import (
	"sort"
	"strings"
)

// LinkStatus is the observed state of a link slot
type LinkStatus string

const (
	LinkActive   LinkStatus = "Active"   // symlink whose target resolves
	LinkBroken   LinkStatus = "Broken"   // symlink whose target does not resolve
	LinkDirect   LinkStatus = "Direct"   // real directory occupying the slot
	LinkInactive LinkStatus = "Inactive" // nothing linked in the slot
)

// EntryKind is the filesystem type found in a link slot
type EntryKind int

const (
	EntryNone EntryKind = iota
	EntrySymlink
	EntryDirectory
	EntryFile
)

// DeriveStatus computes a slot status from one observation.
// Regular files are reported as Inactive: they are never links and never directories.
func DeriveStatus(kind EntryKind, targetExists bool) LinkStatus {
	switch kind {
	case EntrySymlink:
		if targetExists {
			return LinkActive
		}
		return LinkBroken
	case EntryDirectory:
		return LinkDirect
	default:
		return LinkInactive
	}
}

// LinkEntry is one entry observed in a target directory
type LinkEntry struct {
	Name   string     `json:"name"`
	Status LinkStatus `json:"status"`
	Target string     `json:"target,omitempty"`
}

// IsSymlink reports whether the entry was observed as a symlink
func (e LinkEntry) IsSymlink() bool {
	return e.Status == LinkActive || e.Status == LinkBroken
}

// SortEntries orders entries case-insensitively by name
func SortEntries(entries []LinkEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// DesiredLinkSet maps a skill name to the absolute source directory it should link to
type DesiredLinkSet map[string]string

// Names returns the desired names sorted
func (d DesiredLinkSet) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkOp names the operation a link failure happened in
type LinkOp string

const (
	OpCreate LinkOp = "create"
	OpRemove LinkOp = "remove"
)

// LinkFailure records a per-name failure inside a batch operation
type LinkFailure struct {
	Err  error
	Name string
	Op   LinkOp
}

// ReconcileResult summarises a reconciliation pass.
// Created lists names successfully created or updated, independent of Removed.
type ReconcileResult struct {
	Created  []string
	Failures []LinkFailure
	Removed  []string
}

// FailureFor returns the failure recorded for name, if any
func (r *ReconcileResult) FailureFor(name string) (LinkFailure, bool) {
	for _, f := range r.Failures {
		if f.Name == name {
			return f, true
		}
	}
	return LinkFailure{}, false
}

// ValidateLinkName rejects names that would escape the target directory
func ValidateLinkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\x00") {
		return ErrInvalidLinkName
	}
	return nil
}

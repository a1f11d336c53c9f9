package shellproto

import (
	"strings"

	"github.com/skillpilot/skillpilot/internal/domain"
)

// ListingEntry is one classified line of ls -la output
type ListingEntry struct {
	Kind   domain.EntryKind
	Name   string
	Target string
}

// IsSymlink reports whether the line described a symlink
func (e ListingEntry) IsSymlink() bool {
	return e.Kind == domain.EntrySymlink
}

// ParseListingLine classifies one ls -la line.
// Only symlinks and directories are recognised; ok is false for anything else.
func ParseListingLine(line string) (ListingEntry, bool) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "l"):
		arrow := strings.Index(line, " -> ")
		if arrow < 0 {
			return ListingEntry{}, false
		}
		fields := strings.Fields(line[:arrow])
		if len(fields) == 0 {
			return ListingEntry{}, false
		}
		return ListingEntry{
			Kind:   domain.EntrySymlink,
			Name:   fields[len(fields)-1],
			Target: strings.TrimSpace(line[arrow+len(" -> "):]),
		}, true
	case strings.HasPrefix(line, "d"):
		fields := strings.Fields(line)
		name := fields[len(fields)-1]
		if name == "." || name == ".." {
			return ListingEntry{}, false
		}
		return ListingEntry{Kind: domain.EntryDirectory, Name: name}, true
	}
	return ListingEntry{}, false
}

// ParseListing classifies every line of ls -la output, skipping the rest
func ParseListing(output string) []ListingEntry {
	var entries []ListingEntry
	for _, line := range strings.Split(output, "\n") {
		if e, ok := ParseListingLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// ParseExistsToken interprets the token echoed by an ExistsCommand
func ParseExistsToken(output string) (bool, error) {
	switch strings.TrimSpace(output) {
	case ExistsToken:
		return true, nil
	case MissingToken:
		return false, nil
	}
	return false, domain.ErrMalformed
}

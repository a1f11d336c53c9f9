package shellproto

import "strings"

const (
	SkillSeparator   = "===SP_SEP==="
	ProfileSeparator = "===PROFILE_SEP==="
	pathMarker       = "PATH:"
)

// FileBlock is one file of a batch dump
type FileBlock struct {
	Content string
	Path    string
}

// SplitBlocks splits output on sep, dropping blocks that are blank after trimming
func SplitBlocks(output, sep string) []string {
	var blocks []string
	for _, b := range strings.Split(output, sep) {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ParseBatchDump parses a sentinel-delimited dump whose blocks start with a PATH: marker.
// Blocks without the marker are dropped.
func ParseBatchDump(output, sep string) []FileBlock {
	var files []FileBlock
	for _, b := range SplitBlocks(output, sep) {
		first, rest, _ := strings.Cut(b, "\n")
		first = strings.TrimSuffix(first, "\r")
		if !strings.HasPrefix(first, pathMarker) {
			continue
		}
		files = append(files, FileBlock{
			Path:    strings.TrimPrefix(first, pathMarker),
			Content: rest,
		})
	}
	return files
}

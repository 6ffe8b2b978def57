package types

import (
	"io/fs"
	"path"
	"strings"

	"github.com/arthur-debert/skaff/pkg/errors"
)

// TemplateEntry is a single path declared by a template set. Directory
// entries carry no content; file entries hold the literal bytes to write.
type TemplateEntry struct {
	// RelPath is the destination path relative to the project root,
	// always slash-separated.
	RelPath string

	// Dir marks the entry as a directory to create rather than a file.
	Dir bool

	// Mode holds the permission bits to apply to the created entry.
	Mode fs.FileMode

	// Content is the file body. Unused for directory entries.
	Content []byte
}

// TemplateSet is the declarative bundle of paths and content defining one
// supported project-language skeleton. Entries are ordered so directories
// appear before the files beneath them.
type TemplateSet struct {
	// Language is the project-language key this set was resolved for.
	Language string

	// Entries lists every path the set declares, in creation order.
	Entries []TemplateEntry
}

// Validate checks the structural invariants of the set: relative paths
// never escape the target root and are unique within the set.
func (s *TemplateSet) Validate() error {
	seen := make(map[string]bool, len(s.Entries))
	for _, entry := range s.Entries {
		if entry.RelPath == "" || path.IsAbs(entry.RelPath) {
			return errors.Newf(errors.ErrTemplateInvalid,
				"template entry has invalid path %q", entry.RelPath)
		}
		cleaned := path.Clean(entry.RelPath)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			return errors.Newf(errors.ErrTemplateInvalid,
				"template entry %q escapes the target root", entry.RelPath)
		}
		if seen[cleaned] {
			return errors.Newf(errors.ErrTemplateInvalid,
				"template entry %q declared more than once", entry.RelPath)
		}
		seen[cleaned] = true
	}
	return nil
}

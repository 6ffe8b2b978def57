package materialize

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/logging"
	"github.com/arthur-debert/skaff/pkg/types"
)

// OverwritePolicy controls how Materialize treats destination paths that
// already exist.
type OverwritePolicy int

const (
	// PolicySkip leaves conflicting paths untouched, records a
	// ConflictRecord for each, and keeps materializing independent
	// non-conflicting entries.
	PolicySkip OverwritePolicy = iota

	// PolicyFail aborts the whole call on the first conflict and rolls
	// back every entry created so far.
	PolicyFail
)

func (p OverwritePolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Materialize instantiates a template set under targetRoot.
//
// The target root and any missing ancestors are created first. Every
// filesystem entry the call creates is journaled; on a hard failure the
// journal is unwound in reverse creation order so the target is left with
// exactly the entries it had before the call. Pre-existing entries are
// never removed.
//
// The returned conflict list is valid alongside a nil error under
// PolicySkip: skipped conflicts are warnings, not failures.
func Materialize(fsys types.FS, targetRoot string, set *types.TemplateSet, policy OverwritePolicy) (*types.ProjectSkeleton, []types.ConflictRecord, error) {
	log := logging.GetLogger("materialize")

	if set == nil || len(set.Entries) == 0 {
		return nil, nil, errors.New(errors.ErrInvalidInput, "template set is empty")
	}
	if err := set.Validate(); err != nil {
		return nil, nil, err
	}

	root, err := filepath.Abs(targetRoot)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid target root %q", targetRoot)
	}

	j := newJournal(fsys)
	log.Debug().
		Str("root", root).
		Str("language", set.Language).
		Str("policy", policy.String()).
		Int("entries", len(set.Entries)).
		Msg("Starting materialization")

	if err := ensureRoot(fsys, j, root); err != nil {
		j.rollback()
		return nil, nil, err
	}

	var conflicts []types.ConflictRecord
	for _, entry := range set.Entries {
		dest := filepath.Join(root, filepath.FromSlash(entry.RelPath))

		conflict, err := materializeEntry(fsys, j, dest, entry, policy)
		if err != nil {
			j.rollback()
			return nil, nil, err
		}
		if conflict != nil {
			conflict.Path = entry.RelPath
			conflicts = append(conflicts, *conflict)
			log.Debug().
				Str("path", entry.RelPath).
				Str("kind", string(conflict.Kind)).
				Msg("Recorded conflict")
		}
	}

	skeleton := &types.ProjectSkeleton{
		Root:         root,
		Language:     set.Language,
		CreatedAt:    time.Now(),
		CreatedPaths: relativeCreated(root, j.created),
	}

	log.Info().
		Str("root", root).
		Int("created", len(skeleton.CreatedPaths)).
		Int("conflicts", len(conflicts)).
		Msg("Materialization complete")
	return skeleton, conflicts, nil
}

// ensureRoot creates targetRoot and any missing ancestors, journaling
// exactly the directories that did not exist beforehand.
func ensureRoot(fsys types.FS, j *journal, root string) error {
	info, err := fsys.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf(errors.ErrTypeConflict,
				"target root %q exists and is not a directory", root)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return classifyAccessError(err, root)
	}

	// Walk upward until an existing ancestor is found, then create the
	// missing chain top-down so each created directory is journaled.
	var missing []string
	current := root
	for {
		if _, err := fsys.Stat(current); err == nil {
			break
		} else if !os.IsNotExist(err) {
			return classifyAccessError(err, current)
		}
		missing = append(missing, current)
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if err := fsys.MkdirAll(missing[i], 0o755); err != nil {
			return classifyAccessError(err, missing[i])
		}
		j.record(missing[i])
	}
	return nil
}

// materializeEntry creates one template entry at dest. A non-nil conflict
// with a nil error means the entry was skipped under PolicySkip.
func materializeEntry(fsys types.FS, j *journal, dest string, entry types.TemplateEntry, policy OverwritePolicy) (*types.ConflictRecord, error) {
	info, statErr := fsys.Stat(dest)

	switch {
	case statErr == nil:
		return existingEntryConflict(dest, entry, info, policy)
	case os.IsNotExist(statErr):
		// Fall through to creation below.
	case os.IsPermission(statErr):
		if policy == PolicySkip {
			return &types.ConflictRecord{Kind: types.ConflictUnwritable}, nil
		}
		return nil, errors.Wrapf(statErr, errors.ErrPermission, "cannot access %q", dest)
	default:
		return nil, errors.Wrapf(statErr, errors.ErrFileAccess, "cannot stat %q", dest)
	}

	if entry.Dir {
		if err := fsys.MkdirAll(dest, entry.Mode); err != nil {
			return nil, classifyAccessError(err, dest)
		}
	} else {
		if err := fsys.WriteFile(dest, entry.Content, entry.Mode); err != nil {
			return nil, classifyAccessError(err, dest)
		}
	}
	j.record(dest)
	return nil, nil
}

// existingEntryConflict resolves a destination that already exists.
// A type mismatch (regular file where a directory is required, or the
// reverse) is always fatal: descendants of a bogus directory cannot be
// materialized safely under either policy.
func existingEntryConflict(dest string, entry types.TemplateEntry, info fs.FileInfo, policy OverwritePolicy) (*types.ConflictRecord, error) {
	if entry.Dir != info.IsDir() {
		return nil, errors.Newf(errors.ErrTypeConflict,
			"path %q exists with conflicting type (want %s)", dest, entryKind(entry))
	}

	kind := types.ConflictFileExists
	if info.IsDir() {
		kind = types.ConflictDirExists
	}

	if policy == PolicyFail {
		return nil, errors.Newf(errors.ErrConflict,
			"path %q already exists", dest).WithDetail("kind", string(kind))
	}
	return &types.ConflictRecord{Kind: kind}, nil
}

func classifyAccessError(err error, path string) error {
	if os.IsPermission(err) {
		return errors.Wrapf(err, errors.ErrPermission, "permission denied for %q", path)
	}
	return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %q", path)
}

func entryKind(entry types.TemplateEntry) string {
	if entry.Dir {
		return "directory"
	}
	return "file"
}

func relativeCreated(root string, created []string) []string {
	rels := make([]string, 0, len(created))
	for _, abs := range created {
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			// Ancestors of the root created by this call are reported
			// by their absolute path.
			rels = append(rels, abs)
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

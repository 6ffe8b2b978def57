package types

import "time"

// ProjectSkeleton is the materialized result of applying a template set
// to a target root. The root exclusively owns everything beneath it.
type ProjectSkeleton struct {
	// Root is the absolute path of the project root directory.
	Root string

	// Language is the template-set key the skeleton was built from.
	Language string

	// CreatedAt records when materialization completed.
	CreatedAt time.Time

	// CreatedPaths lists every filesystem entry the materializer created,
	// in creation order, relative to Root. Pre-existing entries that were
	// skipped do not appear here.
	CreatedPaths []string
}

// ConflictKind classifies a target path that already existed at
// materialization time.
type ConflictKind string

const (
	ConflictDirExists  ConflictKind = "directory-exists"
	ConflictFileExists ConflictKind = "file-exists"
	ConflictUnwritable ConflictKind = "unwritable"
)

// ConflictRecord reports one pre-existing path encountered during
// materialization. Records are surfaced to the caller as warnings and
// never persisted.
type ConflictRecord struct {
	// Path is the conflicting destination, relative to the project root.
	Path string

	// Kind classifies the conflict.
	Kind ConflictKind
}

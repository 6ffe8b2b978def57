package types

// ArtifactKind identifies a derived artifact an external tool can layer
// onto an existing skeleton.
type ArtifactKind string

const (
	// ArtifactDoxyfile is the documentation-generator configuration file.
	ArtifactDoxyfile ArtifactKind = "doxyfile"

	// ArtifactManualPage is a troff manual page for the scaffolded program.
	ArtifactManualPage ArtifactKind = "manual-page"

	// ArtifactCompressedManual is the gzip-compressed manual page.
	ArtifactCompressedManual ArtifactKind = "compressed-manual-page"
)

// GeneratedArtifact records one successfully produced artifact together
// with the external tool that produced it. An artifact is only recorded
// once the producing step finished successfully; a failed or skipped
// generation leaves no partial artifact on disk.
type GeneratedArtifact struct {
	// Kind identifies what was produced.
	Kind ArtifactKind

	// Path is the absolute path of the artifact on disk.
	Path string

	// Tool names the external program that produced the artifact.
	Tool string
}

// SkipReason explains why a requested artifact was not produced.
type SkipReason string

const (
	// SkipToolNotFound means the producing tool is not on the search path.
	SkipToolNotFound SkipReason = "tool-not-found"

	// SkipToolFailed means the producing tool ran but exited non-zero.
	SkipToolFailed SkipReason = "tool-execution-failed"
)

// SkippedArtifact reports a soft, per-artifact failure. Skips never abort
// generation of sibling artifacts.
type SkippedArtifact struct {
	// Kind identifies what was requested.
	Kind ArtifactKind

	// Tool names the external program that would have produced it.
	Tool string

	// Reason explains the skip.
	Reason SkipReason
}

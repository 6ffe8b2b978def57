package docgen

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/arthur-debert/skaff/pkg/logging"
	"github.com/arthur-debert/skaff/pkg/types"
)

// External tool names per artifact kind.
const (
	ToolDoxygen  = "doxygen"
	ToolHelp2man = "help2man"

	// The compressed manual page is produced in-process; the provenance
	// tag still names the compression format.
	toolGzip = "gzip"
)

// Options carries the per-run inputs the generator needs beyond the
// skeleton itself.
type Options struct {
	// ProgramName is the name the manual page documents. Defaults to the
	// base name of the skeleton root.
	ProgramName string

	// ProgramPath is the executable help2man is invoked against.
	// Defaults to ProgramName (resolved through the search path by the
	// tool itself).
	ProgramPath string
}

// Outcome is one element of the ordered result sequence: either a
// generated artifact or a per-kind soft skip, never both.
type Outcome struct {
	Artifact *types.GeneratedArtifact
	Skipped  *types.SkippedArtifact
}

// Generated reports whether the outcome carries a produced artifact.
func (o Outcome) Generated() bool { return o.Artifact != nil }

// Generator layers derived artifacts produced by optional external tools
// onto an existing skeleton. Tool availability is re-derived on every
// Generate call, never cached across invocations.
type Generator struct {
	fs types.FS

	// lookPath and runCommand are injection points for tests.
	lookPath   func(name string) (string, error)
	runCommand func(cmd *exec.Cmd) error
}

// New returns a Generator operating on the given filesystem and the real
// process environment.
func New(fsys types.FS) *Generator {
	return NewWithRunner(fsys, exec.LookPath, func(cmd *exec.Cmd) error { return cmd.Run() })
}

// NewWithRunner returns a Generator with tool lookup and process
// execution replaced, used by tests and callers that need to constrain
// the environment.
func NewWithRunner(fsys types.FS, lookPath func(string) (string, error), runCommand func(*exec.Cmd) error) *Generator {
	return &Generator{
		fs:         fsys,
		lookPath:   lookPath,
		runCommand: runCommand,
	}
}

// Generate produces the requested artifact kinds in order. Each kind is
// isolated: an absent or failing tool yields a skip for that kind and
// generation of the remaining kinds continues. Later kinds may depend on
// earlier ones being present on disk (compression needs the manual page)
// but never on in-memory state beyond the path itself.
func (g *Generator) Generate(ctx context.Context, skeleton *types.ProjectSkeleton, opts Options, kinds ...types.ArtifactKind) []Outcome {
	log := logging.GetLogger("docgen")

	if opts.ProgramName == "" {
		opts.ProgramName = filepath.Base(skeleton.Root)
	}
	if opts.ProgramPath == "" {
		opts.ProgramPath = opts.ProgramName
	}

	outcomes := make([]Outcome, 0, len(kinds))
	for _, kind := range kinds {
		var outcome Outcome
		switch kind {
		case types.ArtifactDoxyfile:
			outcome = g.generateDoxyfile(ctx, skeleton)
		case types.ArtifactManualPage:
			outcome = g.generateManualPage(ctx, skeleton, opts)
		case types.ArtifactCompressedManual:
			outcome = g.compressManualPage(skeleton, opts)
		default:
			outcome = skip(kind, "", types.SkipToolFailed)
		}

		if outcome.Generated() {
			log.Info().
				Str("kind", string(kind)).
				Str("path", outcome.Artifact.Path).
				Str("tool", outcome.Artifact.Tool).
				Msg("Artifact generated")
		} else {
			log.Warn().
				Str("kind", string(kind)).
				Str("reason", string(outcome.Skipped.Reason)).
				Msg("Artifact skipped")
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// generateDoxyfile runs doxygen -g against a temporary path, rewrites the
// fixed attribute set for the project, then renames the result into
// place. The final name only ever appears on success.
func (g *Generator) generateDoxyfile(ctx context.Context, skeleton *types.ProjectSkeleton) Outcome {
	toolPath, err := g.lookPath(ToolDoxygen)
	if err != nil {
		return skip(types.ArtifactDoxyfile, ToolDoxygen, types.SkipToolNotFound)
	}

	dest := filepath.Join(skeleton.Root, "Doxyfile")
	tmp := tempPath(dest)
	defer func() { _ = g.fs.Remove(tmp) }()

	// doxygen -g writes the file itself; stdout is only chatter.
	cmd := toolCommand(ctx, toolPath, "-g", tmp)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := g.runCommand(cmd); err != nil {
		return skip(types.ArtifactDoxyfile, ToolDoxygen, types.SkipToolFailed)
	}

	generated, err := g.fs.ReadFile(tmp)
	if err != nil {
		return skip(types.ArtifactDoxyfile, ToolDoxygen, types.SkipToolFailed)
	}

	rewritten := rewriteDoxyfile(generated, filepath.Base(skeleton.Root))
	if err := g.fs.WriteFile(tmp, rewritten, 0o644); err != nil {
		return skip(types.ArtifactDoxyfile, ToolDoxygen, types.SkipToolFailed)
	}
	if err := g.fs.Rename(tmp, dest); err != nil {
		return skip(types.ArtifactDoxyfile, ToolDoxygen, types.SkipToolFailed)
	}

	return produced(types.ArtifactDoxyfile, dest, ToolDoxygen)
}

// generateManualPage captures help2man's standard output and publishes it
// atomically under doc/<program>.1.
func (g *Generator) generateManualPage(ctx context.Context, skeleton *types.ProjectSkeleton, opts Options) Outcome {
	toolPath, err := g.lookPath(ToolHelp2man)
	if err != nil {
		return skip(types.ArtifactManualPage, ToolHelp2man, types.SkipToolNotFound)
	}

	var stdout bytes.Buffer
	cmd := toolCommand(ctx, toolPath, "--no-info", "--name", opts.ProgramName, opts.ProgramPath)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := g.runCommand(cmd); err != nil {
		return skip(types.ArtifactManualPage, ToolHelp2man, types.SkipToolFailed)
	}

	dest := manualPagePath(skeleton, opts)
	if err := writeFileAtomic(g.fs, dest, stdout.Bytes(), 0o644); err != nil {
		return skip(types.ArtifactManualPage, ToolHelp2man, types.SkipToolFailed)
	}

	return produced(types.ArtifactManualPage, dest, ToolHelp2man)
}

// compressManualPage gzips a previously generated manual page. The
// uncompressed page stays valid whether or not compression succeeds.
func (g *Generator) compressManualPage(skeleton *types.ProjectSkeleton, opts Options) Outcome {
	source := manualPagePath(skeleton, opts)
	page, err := g.fs.ReadFile(source)
	if err != nil {
		return skip(types.ArtifactCompressedManual, toolGzip, types.SkipToolFailed)
	}

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(page); err != nil {
		return skip(types.ArtifactCompressedManual, toolGzip, types.SkipToolFailed)
	}
	if err := zw.Close(); err != nil {
		return skip(types.ArtifactCompressedManual, toolGzip, types.SkipToolFailed)
	}

	dest := source + ".gz"
	if err := writeFileAtomic(g.fs, dest, compressed.Bytes(), 0o644); err != nil {
		return skip(types.ArtifactCompressedManual, toolGzip, types.SkipToolFailed)
	}

	return produced(types.ArtifactCompressedManual, dest, toolGzip)
}

// toolCommand builds an exec.Cmd whose context cancellation delivers an
// interrupt to the tool instead of killing it outright.
func toolCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = 10 * time.Second
	return cmd
}

func manualPagePath(skeleton *types.ProjectSkeleton, opts Options) string {
	return filepath.Join(skeleton.Root, "doc", opts.ProgramName+".1")
}

func skip(kind types.ArtifactKind, tool string, reason types.SkipReason) Outcome {
	return Outcome{Skipped: &types.SkippedArtifact{Kind: kind, Tool: tool, Reason: reason}}
}

func produced(kind types.ArtifactKind, path, tool string) Outcome {
	return Outcome{Artifact: &types.GeneratedArtifact{Kind: kind, Path: path, Tool: tool}}
}

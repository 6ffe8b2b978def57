package editor

import (
	"context"
	"crypto/sha256"
	stderrors "errors"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/logging"
)

// EnvEditor is the environment variable naming the preferred editor.
const EnvEditor = "EDITOR"

// fallbackEditors are tried in order when EnvEditor is unset or does not
// resolve to an executable.
var fallbackEditors = []string{"vim", "vi", "nano"}

// EditResult reports whether an edit pass changed the file on disk.
type EditResult int

const (
	Unmodified EditResult = iota
	Modified
)

func (r EditResult) String() string {
	if r == Modified {
		return "modified"
	}
	return "unmodified"
}

// Session drives a single interactive edit pass over one file. It is not
// re-entrant: a session must not be started while a prior Edit on it is
// still blocked.
type Session struct {
	// lookPath and runCommand are injection points for tests.
	lookPath   func(name string) (string, error)
	runCommand func(cmd *exec.Cmd) error

	running bool
}

// NewSession returns a Session backed by the real environment.
func NewSession() *Session {
	return &Session{
		lookPath:   exec.LookPath,
		runCommand: func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// Resolve returns the editor program to use. The environment-provided
// editor wins when it resolves to an executable on the search path;
// otherwise the fixed fallback list is tried in order. Resolution never
// invokes the program and is re-derived on every call rather than cached,
// to tolerate a changing search path between runs.
func (s *Session) Resolve() (string, error) {
	candidates := fallbackEditors
	if env := os.Getenv(EnvEditor); env != "" {
		candidates = append([]string{env}, fallbackEditors...)
	}
	for _, candidate := range candidates {
		if path, err := s.lookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", errors.Newf(errors.ErrNoEditor,
		"no editor available: $%s unset or unresolvable and none of %v found on PATH",
		EnvEditor, fallbackEditors)
}

// Edit launches the resolved editor on filePath and blocks until it
// exits. The child inherits the controlling terminal. A nonzero editor
// exit is surfaced as an error but does not corrupt the target file; the
// file on disk reflects whatever the editor left behind. The returned
// EditResult is valid even alongside a nonzero-exit error and is derived
// from the file content, never from the exit code.
func (s *Session) Edit(ctx context.Context, filePath string) (EditResult, error) {
	log := logging.GetLogger("editor")

	if s.running {
		return Unmodified, errors.New(errors.ErrInternal,
			"editor session already in progress")
	}

	editorPath, err := s.Resolve()
	if err != nil {
		return Unmodified, err
	}

	before, err := fileDigest(filePath)
	if err != nil {
		return Unmodified, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read %q before editing", filePath)
	}

	log.Debug().Str("editor", editorPath).Str("file", filePath).Msg("Launching editor")

	cmd := exec.CommandContext(ctx, editorPath, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// Cancellation delivers an interrupt so the editor can save and
	// restore the terminal before exiting.
	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
	cmd.WaitDelay = 10 * time.Second

	s.running = true
	runErr := s.runCommand(cmd)
	s.running = false

	after, digestErr := fileDigest(filePath)
	result := Unmodified
	if digestErr == nil && after != before {
		result = Modified
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if stderrors.As(runErr, &exitErr) {
			return result, errors.Newf(errors.ErrEditorExit,
				"editor %q exited with code %d", editorPath, exitErr.ExitCode()).
				WithDetail("code", exitErr.ExitCode())
		}
		return result, errors.Wrapf(runErr, errors.ErrEditorExit,
			"editor %q failed to run", editorPath)
	}

	log.Debug().Str("file", filePath).Str("result", result.String()).Msg("Editor exited")
	return result, nil
}

func fileDigest(path string) ([32]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(content), nil
}

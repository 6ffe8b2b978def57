// pkg/editor/editor_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), fake command runner
// PURPOSE: Test editor resolution and modification detection

package editor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skaff/pkg/errors"
)

func fakeSession(lookPath func(string) (string, error), run func(*exec.Cmd) error) *Session {
	return &Session{lookPath: lookPath, runCommand: run}
}

func resolveOnly(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		envEditor string
		available []string
		want      string
		wantErr   bool
	}{
		{
			name:      "env_editor_wins",
			envEditor: "emacs",
			available: []string{"emacs", "vim", "vi"},
			want:      "/usr/bin/emacs",
		},
		{
			name:      "unresolvable_env_falls_back",
			envEditor: "no-such-editor",
			available: []string{"vi"},
			want:      "/usr/bin/vi",
		},
		{
			name:      "fallback_order",
			available: []string{"vi", "vim", "nano"},
			want:      "/usr/bin/vim",
		},
		{
			name:      "nano_last_resort",
			available: []string{"nano"},
			want:      "/usr/bin/nano",
		},
		{
			name:    "nothing_available",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvEditor, tt.envEditor)
			s := fakeSession(resolveOnly(tt.available...), nil)

			got, err := s.Resolve()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrNoEditor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveReDerivesPerCall(t *testing.T) {
	t.Setenv(EnvEditor, "")
	available := map[string]bool{"vi": true}
	s := fakeSession(func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}, nil)

	got, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vi", got)

	// The search path changed between calls; resolution follows it.
	available["vim"] = true
	got, err = s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vim", got)
}

func TestEditUnmodified(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "original content\n")

	s := fakeSession(resolveOnly("vim"), func(cmd *exec.Cmd) error {
		return nil
	})

	result, err := s.Edit(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, Unmodified, result)
}

func TestEditModified(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "original content\n")

	s := fakeSession(resolveOnly("vim"), func(cmd *exec.Cmd) error {
		return os.WriteFile(target, []byte("changed content\n"), 0o644)
	})

	result, err := s.Edit(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, Modified, result)
}

func TestEditNonzeroExit(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "original content\n")

	// /bin/false exits 1 without touching the file.
	s := fakeSession(
		func(name string) (string, error) { return "/bin/false", nil },
		func(cmd *exec.Cmd) error { return cmd.Run() },
	)

	result, err := s.Edit(context.Background(), target)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEditorExit))
	assert.Equal(t, Unmodified, result)

	// The target survives the failed pass untouched.
	content, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "original content\n", string(content))
}

func TestEditModifiedDespiteNonzeroExit(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "original content\n")

	s := fakeSession(resolveOnly("vim"), func(cmd *exec.Cmd) error {
		if err := os.WriteFile(target, []byte("changed content\n"), 0o644); err != nil {
			return err
		}
		// Simulate an editor that saved the file and then crashed.
		return exec.Command("/bin/false").Run()
	})

	result, err := s.Edit(context.Background(), target)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEditorExit))
	assert.Equal(t, Modified, result)
}

func TestEditForwardsInterruptOnCancel(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "content\n")

	var captured *exec.Cmd
	s := fakeSession(resolveOnly("vim"), func(cmd *exec.Cmd) error {
		captured = cmd
		return nil
	})

	_, err := s.Edit(context.Background(), target)
	require.NoError(t, err)
	require.NotNil(t, captured)

	// Cancellation signals the editor instead of killing it outright,
	// with a bounded wait before a hard kill.
	assert.NotNil(t, captured.Cancel)
	assert.Greater(t, captured.WaitDelay, time.Duration(0))
}

func TestEditNoEditorAvailable(t *testing.T) {
	t.Setenv(EnvEditor, "")
	target := writeTemp(t, "content\n")

	s := fakeSession(resolveOnly(), nil)

	_, err := s.Edit(context.Background(), target)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNoEditor))
}

func TestEditMissingFile(t *testing.T) {
	t.Setenv(EnvEditor, "")
	s := fakeSession(resolveOnly("vim"), nil)

	_, err := s.Edit(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFileAccess))
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

package docgen

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/arthur-debert/skaff/pkg/types"
)

// writeFileAtomic writes data to a temporary path next to dest and then
// renames it into place, so a crash never leaves a half-written artifact
// visible under its final name.
func writeFileAtomic(fsys types.FS, dest string, data []byte, perm fs.FileMode) error {
	tmp := tempPath(dest)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, dest); err != nil {
		// Leave no stray temp file behind on a failed rename.
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}

// tempPath derives a sibling temporary name for dest. Artifacts are only
// ever published by renaming a temp path into place.
func tempPath(dest string) string {
	return fmt.Sprintf("%s.tmp-%d", dest, time.Now().UnixNano())
}

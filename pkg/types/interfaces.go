package types

import (
	"io/fs"
)

// FS is the filesystem interface required for skaff operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Removal operations, used by rollback
	Remove(name string) error
	RemoveAll(path string) error

	// Rename is required for atomic artifact publication
	Rename(oldpath, newpath string) error
}

// Package filesystem provides filesystem implementations for skaff.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed in-memory
// filesystem used by tests.
package filesystem

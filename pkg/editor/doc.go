// Package editor resolves an external interactive editor program and
// drives a single blocking edit pass over one generated file.
package editor

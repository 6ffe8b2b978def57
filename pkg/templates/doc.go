// Package templates is the template registry: it maps project-language
// keys to the declarative set of files and directories a new skeleton is
// built from. The bundle is compiled into the binary via go:embed and the
// registry performs no filesystem side effects; resolution is a pure
// lookup over a mapping built once.
package templates

// Package config loads skaff's layered configuration: embedded TOML
// defaults, an optional user file under the XDG config directory, and
// SKAFF_-prefixed environment overrides. It also reads and writes the
// .skaff.toml manifest stamped into each generated project.
package config

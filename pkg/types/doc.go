// Package types holds the core domain types shared across skaff:
// template sets, materialized skeletons, conflict records, generated
// artifacts, and the filesystem interface the engine operates through.
package types

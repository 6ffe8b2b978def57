// Package create sequences one scaffold run: template resolution,
// materialization, license and documentation stubs, the optional
// interactive editor pass, and derived doc-generation artifacts.
package create

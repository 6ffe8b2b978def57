// Package docgen detects optional external documentation tools and,
// when present, invokes them to layer derived artifacts onto an existing
// skeleton: a doxygen configuration, a help2man manual page, and a
// gzip-compressed copy of that page. Missing or failing tools degrade
// gracefully per artifact; they never abort sibling generation.
package docgen

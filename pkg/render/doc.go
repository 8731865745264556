// Package render implements the template composition core: an immutable
// registry of named text fragments plus a renderer that resolves include
// directives against it and substitutes variable placeholders, producing a
// single YAML-shaped text blob.
//
// The package performs no filesystem writes and no YAML validation; callers
// own both concerns.
package render

//go:build !debug

// Package debug exposes the debug build tag to other components.
package debug

// Debug reports whether the binary was built with the debug tag.
const Debug = false

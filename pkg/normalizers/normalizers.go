// Package normalizers provides string normalization for catalog values that
// are compared or looked up by name (locations, categories).
package normalizers

import (
	"strings"
)

// Normalizer is a function that normalizes a string value
type Normalizer func(string) string

// registry holds all registered normalizers
var registry = make(map[string]Normalizer)

func init() {
	Register("lowercase", Lowercase)
	Register("trim", Trim)
	Register("collapse_whitespace", CollapseWhitespace)
}

// Register adds a normalizer to the registry
func Register(name string, fn Normalizer) {
	registry[name] = fn
}

// Get retrieves a normalizer by name
func Get(name string) (Normalizer, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Apply applies a named normalizer to a value. Unknown names leave the value
// untouched.
func Apply(value, normalizer string) string {
	fn, ok := registry[normalizer]
	if !ok {
		return value
	}
	return fn(value)
}

// ApplyChain applies multiple normalizers in sequence
func ApplyChain(value string, normalizers ...string) string {
	result := value
	for _, name := range normalizers {
		result = Apply(result, name)
	}
	return result
}

// Lowercase converts the value to lowercase
func Lowercase(value string) string {
	return strings.ToLower(value)
}

// Trim removes leading and trailing whitespace
func Trim(value string) string {
	return strings.TrimSpace(value)
}

// CollapseWhitespace replaces runs of whitespace with a single space
func CollapseWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Location is the chain applied to location names before coordinate lookup,
// so "  Lyon " and "lyon" resolve to the same entry.
func Location(value string) string {
	return ApplyChain(value, "trim", "collapse_whitespace", "lowercase")
}

// Package strings provides small string and rune helpers shared by the services
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /text or /meta
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Runes renders each rune as its own string, e.g. for JSON listings of punctuation sets
func Runes(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// OrDefault returns def when s is blank, else s trimmed
func OrDefault(s, def string) string {
	if s = std.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// Package matcher provides the pattern and keyword primitives used to pick
// tools: CLI name patterns and the ordered fallback intent rules.
package matcher

import "strings"

// Match reports whether name satisfies pattern using common CLI semantics
// adopted across the project: "*" matches everything, anything else is a
// prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

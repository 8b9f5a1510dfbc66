// SPDX-License-Identifier: MPL-2.0

package discovery

import "strings"

// PatternSet is a set of ignore patterns. A pattern is either an exact
// dotted module path, or a dotted prefix followed by ".*" which excludes
// the prefix's whole subtree.
type PatternSet map[string]struct{}

// NewPatternSet builds a PatternSet from configured pattern strings.
func NewPatternSet(patterns []string) PatternSet {
	if len(patterns) == 0 {
		return nil
	}
	set := make(PatternSet, len(patterns))
	for _, p := range patterns {
		set[p] = struct{}{}
	}
	return set
}

// IsIgnored reports whether a dotted module name is excluded by the
// pattern set. Exact membership is checked first, then every proper
// dotted prefix with a ".*" suffix. Single-segment names have no proper
// prefixes and so can only ever be exact-matched; wildcard-ignoring a
// top-level module is intentionally not possible.
//
// The scan is linear in the module's depth, which is fine for the module
// counts this runs on (it happens once, at startup).
func IsIgnored(moduleName string, patterns PatternSet) bool {
	if len(patterns) == 0 {
		return false
	}

	if _, ok := patterns[moduleName]; ok {
		return true
	}

	parts := strings.Split(moduleName, ".")
	for c := 1; c < len(parts); c++ {
		if _, ok := patterns[strings.Join(parts[:c], ".")+".*"]; ok {
			return true
		}
	}

	return false
}

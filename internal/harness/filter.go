package harness

import (
	"path"
	"strings"
)

// Filter narrows registered suites by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterSuites filters suites and their tests by name pattern using
// wildcard matching. Supports patterns like "ParseArgs*" or "*BIF*".
// A suite whose name matches keeps all its tests; otherwise only the
// tests whose names match are kept.
func (f *Filter) FilterSuites(suites []Suite, pattern string) []Suite {
	if pattern == "" {
		return suites
	}

	var filtered []Suite
	for _, s := range suites {
		if matchName(s.Name, pattern) {
			filtered = append(filtered, s)
			continue
		}

		var tests []Test
		for _, t := range s.Tests {
			if matchName(t.Name, pattern) {
				tests = append(tests, t)
			}
		}
		if len(tests) > 0 {
			filtered = append(filtered, Suite{Name: s.Name, Tests: tests})
		}
	}
	return filtered
}

// matchName matches a name against a pattern: path.Match wildcards first,
// then a part-wise substring match for patterns like "*BIF*", then a plain
// substring check for patterns without wildcards.
func matchName(name, pattern string) bool {
	matched, err := path.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasNonEmptyPart := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

package report

import (
	"path/filepath"
	"strings"
)

// Filter narrows suite names by a user-supplied pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterSuites filters suite names by pattern using wildcard matching.
// Supports patterns like "com.example.*Test" or "*Login*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterSuites(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	var filtered []string

	for _, name := range names {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*Login*"
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(name, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, name)
				continue
			}
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, name)
			}
		}
	}

	return filtered
}

// Package strings provides string helpers shared by importers and stores.
package strings

import (
	"strings"
)

// DedupeAndTrim removes empty strings and duplicates after trimming
// whitespace. Order of first occurrence is preserved.
func DedupeAndTrim(values []string) []string {
	return dedupe(values, strings.TrimSpace)
}

// DedupeAndTrimLower is DedupeAndTrim with case folding.
func DedupeAndTrimLower(values []string) []string {
	return dedupe(values, func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	})
}

// NormalizeHandles lower-cases social handles, strips a leading '@' and
// drops duplicates. Handles are stored this way for quick lookup.
func NormalizeHandles(values []string) []string {
	return dedupe(values, func(v string) string {
		return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v)), "@")
	})
}

func dedupe(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}

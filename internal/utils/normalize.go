package utils

import (
	"strings"
)

// NormalizeName returns the canonical form of a free-text token: trimmed of
// surrounding whitespace and lowercased. Ingredient and supply names are
// stored and compared in this form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeNameSet normalizes every name, drops empties and de-duplicates,
// preserving first-seen order.
func NormalizeNameSet(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		canonical := NormalizeName(name)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		normalized = append(normalized, canonical)
	}
	return normalized
}

package domain

import "strings"

// ParseKeywords splits a comma-separated list into trimmed keywords.
// "a, b ,c" -> ["a", "b", "c"]. Empty elements are dropped; when nothing is
// left the result is nil so callers fall back to their default set.
func ParseKeywords(raw string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if k := strings.TrimSpace(part); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

package normalize

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, replaces every run of characters outside [a-z0-9]
// with a single hyphen and trims leading and trailing hyphens.
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// truthy is the accepted vocabulary for boolean columns
var truthy = map[string]bool{
	"true": true,
	"yes":  true,
	"1":    true,
	"on":   true,
}

// ParseFlag reports whether s is one of true, yes, 1, on (case-insensitive)
func ParseFlag(s string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(s))]
}

// SplitList splits s on sep, trims each part and drops empty parts
func SplitList(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

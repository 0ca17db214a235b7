package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-+`)
)

// Make derives a URL-safe identifier from a display name.
// Empty input yields an empty slug; callers decide what to do with that.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

package helpers

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^\w\-]+`)
	slugHyphens  = regexp.MustCompile(`\-\-+`)
	slugTrailing = regexp.MustCompile(`-+$`)
)

// Slugify converts a title into a URL-safe slug: lowercased, spaces replaced
// with hyphens, non-word characters stripped, repeated hyphens collapsed.
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugTrailing.ReplaceAllString(s, "")
	return s
}

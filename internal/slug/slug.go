package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9\s-]`)
	collapser = regexp.MustCompile(`[\s-]+`)
)

// Make turns free text into a URL-friendly slug.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonAlnum.ReplaceAllString(s, "")
	s = collapser.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

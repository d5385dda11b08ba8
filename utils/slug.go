package utils

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9_-]`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify lowercases, hyphenates whitespace and strips everything that is not
// a word character. "Golden Bakery" -> "golden-bakery".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}

package codegen

import (
	"regexp"
	"strings"
)

var (
	// leading fence with an optional language tag, e.g. ```python
	reLeadingFence  = regexp.MustCompile("\\A```[a-zA-Z0-9_+-]*[ \t]*\r?\n?")
	reTrailingFence = regexp.MustCompile("\r?\n?```\\s*\\z")
)

// Sanitize turns a raw model response into a standalone code artifact:
// trim, strip a leading fenced-code marker, strip a trailing one, re-trim.
// Each step leaves already-clean text alone.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = reLeadingFence.ReplaceAllString(s, "")
	s = reTrailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

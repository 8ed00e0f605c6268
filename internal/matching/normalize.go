// Package matching implements the candidate-to-opportunity matching and
// ranking engine: skill normalization, tiered similarity scoring, per-pair
// match calculation and catalog ranking. It is pure and synchronous: no
// I/O, no shared mutable state, no errors.
package matching

import (
	"regexp"
	"strings"
)

var (
	// Keeps lowercase letters, digits, whitespace, and the +, #, . needed
	// by names like c++, c# and node.js.
	reDisallowed = regexp.MustCompile(`[^a-z0-9\s+#.]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw skill or field string into a comparable
// form. The output may be empty for degenerate input (e.g. all
// punctuation); callers tolerate this.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = reDisallowed.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

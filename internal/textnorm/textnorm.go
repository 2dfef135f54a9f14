// Package textnorm provides text canonicalization used by every stage of the
// screening engine. All functions are pure and total: any input, including the
// empty string, yields a well-defined result.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// Dots, plus and hash survive normalization so tokens like "react.js",
	// "c++" and "c#" keep their identity.
	reStrip     = regexp.MustCompile(`[^a-z0-9.+# ]`)
	reSpaces    = regexp.MustCompile(`\s+`)
	reCompact   = regexp.MustCompile(`[\s.]+`)
	reHeuristic = regexp.MustCompile(`[A-Za-z0-9.+#]{2,}`)
)

// Normalize lowercases, strips characters outside [a-z0-9 . + #], collapses
// whitespace runs to a single space and trims the ends.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = reStrip.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Compact normalizes and additionally removes all spaces and dots, so that
// "Tailwind CSS", "tailwind.css" and "tailwindcss" compare equal.
func Compact(s string) string {
	return reCompact.ReplaceAllString(Normalize(s), "")
}

// CompactNormalized removes spaces and dots from an already normalized string.
func CompactNormalized(s string) string {
	return reCompact.ReplaceAllString(s, "")
}

// HeuristicTokens extracts normalized alphanumeric runs (length > 1) from raw
// text. These are the candidate tokens for heuristic and fuzzy skill matching.
func HeuristicTokens(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range reHeuristic.FindAllString(s, -1) {
		n := Normalize(tok)
		if len(n) <= 1 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

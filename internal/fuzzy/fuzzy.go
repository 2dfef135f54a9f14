// Package fuzzy provides the partial-ratio similarity capability used as a
// fallback matching strategy. It is modeled as a strategy interface: callers
// that receive a nil Matcher simply skip fuzzy matching.
package fuzzy

import (
	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Matcher scores string similarity on a 0-100 scale, tolerant of substring and
// ordering differences.
type Matcher interface {
	PartialRatio(a, b string) int
}

// PartialRatioMatcher is the default Matcher backed by the fuzzywuzzy scorer
// family.
type PartialRatioMatcher struct{}

// NewMatcher returns the default partial-ratio matcher.
func NewMatcher() *PartialRatioMatcher {
	return &PartialRatioMatcher{}
}

// PartialRatio returns the best partial-alignment similarity of a and b.
func (PartialRatioMatcher) PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return fuzzywuzzy.PartialRatio(a, b)
}

// ExtractOne returns the choice with the highest partial-ratio score against
// query, along with its index and score. ok is false when choices is empty or
// the matcher is nil.
func ExtractOne(m Matcher, query string, choices []string) (best string, idx int, score int, ok bool) {
	if m == nil || query == "" || len(choices) == 0 {
		return "", -1, 0, false
	}
	idx = -1
	for i, c := range choices {
		s := m.PartialRatio(query, c)
		if s > score {
			best, idx, score = c, i, s
		}
	}
	return best, idx, score, idx >= 0
}

package extract

import (
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/textnorm"
)

// PhraseMatcher finds exact token-sequence occurrences of candidate phrases
// inside a text. It is an optional capability: a nil matcher is skipped.
type PhraseMatcher interface {
	FindPhrases(text string, phrases []string) []string
}

// TokenPhraseMatcher matches normalized phrases on whole-token boundaries, so
// "rest api" is found in "... rest api ..." but not in "... rest apis ...".
type TokenPhraseMatcher struct{}

// NewPhraseMatcher returns the default token-boundary phrase matcher.
func NewPhraseMatcher() *TokenPhraseMatcher {
	return &TokenPhraseMatcher{}
}

// FindPhrases returns the subset of phrases that occur in text as whole-token
// sequences. Both text and phrases are normalized before comparison.
func (TokenPhraseMatcher) FindPhrases(text string, phrases []string) []string {
	hay := " " + textnorm.Normalize(text) + " "
	var out []string
	for _, p := range phrases {
		n := textnorm.Normalize(p)
		if n == "" {
			continue
		}
		if strings.Contains(hay, " "+n+" ") {
			out = append(out, n)
		}
	}
	return out
}

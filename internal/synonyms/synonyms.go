// Package synonyms expands canonical skill names into their known textual
// variants. The curated table is immutable configuration: per-job overrides are
// merged at lookup time and never mutate the base table.
package synonyms

import (
	"sort"

	"github.com/Sayak1321/faculty-recruitment-system/internal/textnorm"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// defaultTable maps canonical skill names to their curated variants.
// Extend as new equivalences are confirmed by screening reviews.
var defaultTable = types.Synonyms{
	"javascript":  {"js", "java script"},
	"react":       {"react.js", "reactjs", "react js"},
	"tailwindcss": {"tailwind", "tailwind css", "tailwind.css"},
	"pocketbase":  {"pocket base", "pocket-base"},
	"firebase":    {"google firebase", "firebase realtime", "firebase auth"},
	"git":         {"github", "gitlab", "version control"},
	"python":      {"py"},
	"figma":       {"figma design"},
	"photoshop":   {"adobe photoshop", "ps"},
}

// Expander resolves skill names against the curated synonym table.
type Expander struct {
	table types.Synonyms
}

// NewExpander creates an expander over the given table. A nil table uses the
// curated default.
func NewExpander(table types.Synonyms) *Expander {
	if table == nil {
		table = defaultTable
	}
	return &Expander{table: table}
}

// Variants returns the full set of normalized variants for name: the canonical
// spelling plus every curated synonym. Per-job overrides in extra take
// precedence over the base table. The result always contains at least the
// normalized input and holds no duplicates.
func (e *Expander) Variants(name string, extra types.Synonyms) []string {
	n := textnorm.Normalize(name)
	variants := []string{n}
	if canon, vals, ok := lookup(e.table, n); ok {
		variants = append([]string{canon}, vals...)
	}
	if canon, vals, ok := lookup(extra, n); ok {
		variants = append([]string{canon}, vals...)
	}
	return dedupeNormalized(variants)
}

// CandidateSet returns every canonical name and variant the expander knows,
// merged with the per-job overrides. The extractor scans resumes against this
// set so that skills are detected even when not explicitly requested.
func (e *Expander) CandidateSet(extra types.Synonyms) map[string]struct{} {
	out := make(map[string]struct{})
	addTable := func(t types.Synonyms) {
		for canon, vals := range t {
			if n := textnorm.Normalize(canon); n != "" {
				out[n] = struct{}{}
			}
			for _, v := range vals {
				if n := textnorm.Normalize(v); n != "" {
					out[n] = struct{}{}
				}
			}
		}
	}
	addTable(e.table)
	addTable(extra)
	return out
}

// lookup finds the entry whose canonical name or variant list contains the
// normalized name.
func lookup(table types.Synonyms, n string) (string, []string, bool) {
	if n == "" || len(table) == 0 {
		return "", nil, false
	}
	// Deterministic iteration: canonical names in sorted order.
	canons := make([]string, 0, len(table))
	for canon := range table {
		canons = append(canons, canon)
	}
	sort.Strings(canons)
	for _, canon := range canons {
		canonN := textnorm.Normalize(canon)
		if canonN == n {
			return canonN, table[canon], true
		}
		for _, v := range table[canon] {
			if textnorm.Normalize(v) == n {
				return canonN, table[canon], true
			}
		}
	}
	return "", nil, false
}

func dedupeNormalized(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		n := textnorm.Normalize(v)
		if n == "" {
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

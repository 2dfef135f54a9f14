// Package match decides whether extracted resume facts satisfy individual job
// requirements: degree level and subject, and required/optional skills.
package match

import (
	"regexp"
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/textnorm"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// Degree levels form a total order; 0 means no level detected. Level
// sufficiency is checked with ">=": a doctorate satisfies a bachelor's
// requirement.
const (
	LevelNone      = 0
	LevelBachelor  = 1
	LevelMaster    = 2
	LevelDoctorate = 3
)

// degreeLevelEntry pairs a whole-word keyword with its level. Order matters:
// the first matching keyword wins.
type degreeLevelEntry struct {
	keyword string
	level   int
	re      *regexp.Regexp
}

func levelEntry(keyword string, level int) degreeLevelEntry {
	return degreeLevelEntry{
		keyword: keyword,
		level:   level,
		re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
	}
}

var degreeLevels = []degreeLevelEntry{
	levelEntry("phd", LevelDoctorate),
	levelEntry("doctor", LevelDoctorate),
	levelEntry("m.tech", LevelMaster),
	levelEntry("mtech", LevelMaster),
	levelEntry("ms", LevelMaster),
	levelEntry("m.sc", LevelMaster),
	levelEntry("master", LevelMaster),
	levelEntry("me", LevelMaster),
	levelEntry("b.tech", LevelBachelor),
	levelEntry("btech", LevelBachelor),
	levelEntry("b.e", LevelBachelor),
	levelEntry("be", LevelBachelor),
	levelEntry("b.sc", LevelBachelor),
	levelEntry("b.des", LevelBachelor),
	levelEntry("bdes", LevelBachelor),
	levelEntry("bachelor", LevelBachelor),
}

// Broader fallback patterns when no exact keyword matches.
var (
	reMasterHeuristic   = regexp.MustCompile(`\b(m\.?tech|master|ms|m\.sc|m\.?e)\b`)
	reBachelorHeuristic = regexp.MustCompile(`\b(b\.?tech|btech|bachelor|b\.?des|bdes|b\.?sc)\b`)
	reDoctorHeuristic   = regexp.MustCompile(`\b(ph\.?d?|phd|doctor)\b`)
)

// DegreeLevel returns the ordinal level recognized in a degree phrase:
// 0 none, 1 bachelor, 2 master, 3 doctorate.
func DegreeLevel(phrase string) int {
	if phrase == "" {
		return LevelNone
	}
	t := textnorm.Normalize(phrase)
	for _, e := range degreeLevels {
		if e.re.MatchString(t) {
			return e.level
		}
	}
	switch {
	case reMasterHeuristic.MatchString(t):
		return LevelMaster
	case reBachelorHeuristic.MatchString(t):
		return LevelBachelor
	case reDoctorHeuristic.MatchString(t):
		return LevelDoctorate
	}
	return LevelNone
}

// subjectEquivalence maps canonical degree subjects to recognized variants.
// Checked in listed order so results stay deterministic.
var subjectEquivalence = []struct {
	canonical string
	variants  []string
}{
	{"mechanical", []string{"mechanical engineering", "mechanical"}},
	{"computer", []string{"computer science", "computer engineering", "cse", "computer science engineering"}},
	{"design", []string{"design", "b.des", "b des", "bdes"}},
	{"electrical", []string{"electrical", "electrical engineering", "eee"}},
}

// levelIndicatorWords are stripped from a required-degree phrase when no
// equivalence entry applies, leaving the subject token.
var levelIndicatorWords = map[string]struct{}{
	"m": {}, "m.": {}, "mtech": {}, "m.tech": {},
	"b": {}, "b.": {}, "btech": {}, "b.tech": {},
	"master": {}, "bachelor": {}, "tech": {}, "of": {},
}

// subjectFuzzyThreshold accepts a fuzzy subject hit; subject tokens shorter
// than minSubjectTokenLen never fuzzy-match.
const (
	subjectFuzzyThreshold = 82
	minSubjectTokenLen    = 3
)

// SubjectMatches reports whether the required degree's subject is satisfied by
// any parsed degree phrase: exact substring first, then fuzzy partial-ratio.
// fz may be nil, in which case the fuzzy pass is skipped.
func SubjectMatches(requiredDegree string, parsedDegrees []string, fz fuzzy.Matcher) types.DegreeMatch {
	result := types.DegreeMatch{Required: requiredDegree, Method: types.MethodNone}
	reqNorm := textnorm.Normalize(requiredDegree)
	subjects := subjectTokens(reqNorm)

	parsedNorm := make([]string, len(parsedDegrees))
	for i, d := range parsedDegrees {
		parsedNorm[i] = textnorm.Normalize(d)
	}

	// Exact pass: subject token contained in (or containing) a parsed phrase.
	for i, d := range parsedNorm {
		for _, sub := range subjects {
			if sub != "" && (strings.Contains(d, sub) || strings.Contains(sub, d)) {
				result.Matched = true
				result.MatchedWith = parsedDegrees[i]
				result.Score = 100
				result.Method = types.MethodExact
				return result
			}
		}
	}

	// Fuzzy pass: only for subject tokens of sufficient length, and only when
	// parsed degrees exist.
	if fz != nil && len(parsedNorm) > 0 {
		for _, sub := range subjects {
			if len(sub) < minSubjectTokenLen {
				continue
			}
			_, idx, score, ok := fuzzy.ExtractOne(fz, sub, parsedNorm)
			if ok && score >= subjectFuzzyThreshold {
				result.Matched = true
				result.MatchedWith = parsedDegrees[idx]
				result.Score = float64(score)
				result.Method = types.MethodFuzzy
				return result
			}
		}
	}

	return result
}

// subjectTokens extracts candidate subject tokens from a normalized
// required-degree phrase: curated equivalences first, then the first token
// left after stripping level-indicator words.
func subjectTokens(reqNorm string) []string {
	var subjects []string
	for _, eq := range subjectEquivalence {
		for _, v := range append([]string{eq.canonical}, eq.variants...) {
			if strings.Contains(reqNorm, v) {
				subjects = append(subjects, eq.canonical)
				break
			}
		}
	}
	if len(subjects) > 0 {
		return subjects
	}
	for _, p := range strings.Fields(reqNorm) {
		if _, ok := levelIndicatorWords[p]; ok {
			continue
		}
		return []string{p}
	}
	return nil
}

// Package eligibility combines extracted resume facts with a job's criteria
// into a verdict: eligible or not, itemized reasons, and a machine-readable
// match-info record. Evaluation is a pure function of its inputs.
package eligibility

import (
	"fmt"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/match"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// Evaluator checks a parsed resume against screening criteria.
type Evaluator struct {
	skills *match.SkillMatcher
	fuzzy  fuzzy.Matcher
}

// New creates an evaluator. fz may be nil to disable fuzzy matching.
func New(skills *match.SkillMatcher, fz fuzzy.Matcher) *Evaluator {
	return &Evaluator{skills: skills, fuzzy: fz}
}

// Evaluate produces the verdict for one (resume, criteria) pair. Failures are
// not short-circuited: a candidate failing several checks gets a reason for
// each. Reasons is the sole source of truth; Eligible is true iff it is empty.
func (e *Evaluator) Evaluate(parsed types.ParsedResume, c types.Criteria) types.Verdict {
	var reasons []string
	info := types.MatchInfo{
		MatchedRequired: make(map[string]types.SkillMatch),
		MissingRequired: []string{},
		MatchedOptional: make(map[string]types.SkillMatch),
	}

	// Experience.
	info.Experience = types.CountCheck{Required: c.MinExperience, Found: parsed.ExperienceYears}
	if parsed.ExperienceYears < c.MinExperience {
		reasons = append(reasons, fmt.Sprintf("Experience < %d years", c.MinExperience))
	}

	// Publications.
	info.Publications = types.CountCheck{Required: c.MinPublications, Found: parsed.Publications}
	if parsed.Publications < c.MinPublications {
		reasons = append(reasons, fmt.Sprintf("Publications < %d", c.MinPublications))
	}

	// Degree.
	info.Degree, reasons = e.evaluateDegree(c.RequiredDegree, parsed.Degrees, reasons)

	// Required skills: every entry lands in exactly one of matched or missing.
	for _, rs := range c.RequiredSkills {
		m, ok := e.skills.Match(rs, parsed.Skills, c.ExtraSynonyms, match.LooseScoreRequired)
		if ok {
			info.MatchedRequired[rs] = m
		} else {
			info.MissingRequired = append(info.MissingRequired, rs)
			reasons = append(reasons, fmt.Sprintf("Missing required skill: %s", rs))
		}
	}

	// Optional skills: bonus only, never affect eligibility.
	for _, os := range c.OptionalSkills {
		m, ok := e.skills.Match(os, parsed.Skills, c.ExtraSynonyms, match.LooseScoreOptional)
		if ok {
			info.MatchedOptional[os] = m
			info.OptionalBonusCount++
		}
	}

	if reasons == nil {
		reasons = []string{}
	}
	return types.Verdict{
		Eligible:  len(reasons) == 0,
		Reasons:   reasons,
		MatchInfo: info,
	}
}

// evaluateDegree applies the level-before-subject policy. An empty requirement
// is full credit. When a level is required, at least one parsed degree must
// reach it (">=", a doctorate satisfies a bachelor's requirement); the subject
// check still runs on level failure for diagnostics but cannot flip the
// verdict back.
func (e *Evaluator) evaluateDegree(required string, parsedDegrees []string, reasons []string) (types.DegreeMatch, []string) {
	if required == "" {
		// Nothing required: full credit, mirroring the empty required-skills
		// behavior in scoring.
		return types.DegreeMatch{Matched: true, Score: 100, Method: types.MethodNone}, reasons
	}

	requiredLevel := match.DegreeLevel(required)
	if requiredLevel == match.LevelNone {
		dm := match.SubjectMatches(required, parsedDegrees, e.fuzzy)
		if !dm.Matched {
			reasons = append(reasons, fmt.Sprintf("Missing required degree: %s", required))
		}
		return dm, reasons
	}

	hasLevel := false
	for _, d := range parsedDegrees {
		if match.DegreeLevel(d) >= requiredLevel {
			hasLevel = true
			break
		}
	}

	dm := match.SubjectMatches(required, parsedDegrees, e.fuzzy)
	if !hasLevel {
		reasons = append(reasons, fmt.Sprintf("Required degree level not met: %s (need level %d)", required, requiredLevel))
		dm.Matched = false
		return dm, reasons
	}
	if !dm.Matched {
		reasons = append(reasons, fmt.Sprintf("Degree level OK but subject mismatch for required degree: %s", required))
	}
	return dm, reasons
}

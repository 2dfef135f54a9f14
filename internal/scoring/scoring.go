// Package scoring converts a fact record and its match info into a single
// 0-100 ranking score. The function is deterministic and pure; it is only
// meaningful for a MatchInfo produced from the same (resume, criteria) pair.
package scoring

import (
	"math"

	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// Component weights. They sum to 100; each component is capped at 1 before
// weighting.
const (
	requiredSkillsWeight = 50.0
	degreeWeight         = 15.0
	experienceWeight     = 15.0
	optionalSkillsWeight = 10.0
	publicationsWeight   = 10.0
)

// Score computes the ranking score for a resume against criteria, using the
// match info produced by the eligibility evaluator. The result is rounded to
// 2 decimals and clamped to [0, 100].
func Score(parsed types.ParsedResume, c types.Criteria, info types.MatchInfo) float64 {
	score := 0.0

	// Required-skills coverage; full credit when no required skills declared.
	reqPct := 1.0
	if len(c.RequiredSkills) > 0 {
		reqPct = math.Min(1.0, float64(len(info.MatchedRequired))/float64(len(c.RequiredSkills)))
	}
	score += reqPct * requiredSkillsWeight

	// Degree match strength.
	score += math.Min(1.0, info.Degree.Score/100.0) * degreeWeight

	// Experience: linear credit, full at twice the minimum.
	expPct := 1.0
	if c.MinExperience > 0 {
		expPct = math.Min(1.0, float64(parsed.ExperienceYears)/float64(c.MinExperience*2))
	}
	score += expPct * experienceWeight

	// Optional-skills bonus; diminishing-returns fallback when none declared
	// but bonuses matched anyway.
	optPct := 0.0
	if n := len(c.OptionalSkills); n > 0 {
		optPct = math.Min(1.0, float64(info.OptionalBonusCount)/float64(n))
	} else {
		optPct = math.Min(1.0, float64(info.OptionalBonusCount)/float64(info.OptionalBonusCount+1))
	}
	score += optPct * optionalSkillsWeight

	// Publications bonus, itself capped at its weight. With no minimum, any
	// single publication earns the full bonus.
	pubPct := 0.0
	if c.MinPublications <= 0 {
		pubPct = math.Min(1.0, float64(parsed.Publications))
	} else {
		pubPct = math.Min(1.0, float64(parsed.Publications)/float64(c.MinPublications))
	}
	score += math.Min(publicationsWeight, pubPct*publicationsWeight)

	final := math.Round(score*100) / 100
	return math.Max(0.0, math.Min(100.0, final))
}

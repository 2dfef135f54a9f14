package match

import (
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/synonyms"
	"github.com/Sayak1321/faculty-recruitment-system/internal/textnorm"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// Calibration constants for skill matching. These encode screening-quality
// decisions, not arbitrary defaults; change them only with product input.
const (
	skillFuzzyThreshold = 82
	minFuzzyTokenLen    = 4
	exactAcceptFloor    = 60
	// Loose-substring fallback scores for required and optional skills.
	LooseScoreRequired = 55
	LooseScoreOptional = 60
	minLooseTokenLen   = 3
)

// defaultBlacklist holds tokens that look like matches but are never skills:
// exam-board names and generic resume words.
var defaultBlacklist = []string{"icse", "cbse", "class", "school", "all", "grade", "section", "board", "roll"}

// SkillMatcher matches required/optional skill names against the skill tokens
// extracted from a resume.
type SkillMatcher struct {
	expander  *synonyms.Expander
	fuzzy     fuzzy.Matcher
	blacklist []string
}

// NewSkillMatcher creates a matcher. fz may be nil to disable the fuzzy pass.
// A nil blacklist uses the curated default.
func NewSkillMatcher(expander *synonyms.Expander, fz fuzzy.Matcher, blacklist []string) *SkillMatcher {
	if blacklist == nil {
		blacklist = defaultBlacklist
	}
	return &SkillMatcher{expander: expander, fuzzy: fz, blacklist: blacklist}
}

// Blacklisted reports whether token equals or contains a blacklisted term.
func (m *SkillMatcher) Blacklisted(token string) bool {
	t := textnorm.Normalize(token)
	if t == "" {
		return false
	}
	for _, b := range m.blacklist {
		if t == b || strings.Contains(t, b) {
			return true
		}
	}
	return false
}

// Match resolves one skill name against the parsed skill set. The policy
// short-circuits: exact compact equality (score 100), then fuzzy partial-ratio
// (threshold 82, variants shorter than 4 compact characters excluded), then a
// loose-substring fallback scored at looseScore. Blacklisted tokens and
// too-short fuzzy tokens are demoted to non-matches. ok is false when the
// skill is missing.
func (m *SkillMatcher) Match(name string, parsedSkills []string, extra types.Synonyms, looseScore float64) (types.SkillMatch, bool) {
	variants := m.expander.Variants(name, extra)

	parsedCompact := make([]string, len(parsedSkills))
	for i, p := range parsedSkills {
		parsedCompact[i] = textnorm.Compact(p)
	}

	result := m.matchVariants(variants, parsedCompact)

	// Post-hoc demotion: blacklisted or suspiciously short tokens.
	if result.MatchedWith != "" {
		if m.Blacklisted(result.MatchedWith) {
			result = types.SkillMatch{Method: types.MethodBlacklisted}
		} else if result.Method == types.MethodFuzzy && len(result.MatchedWith) < minFuzzyTokenLen {
			result = types.SkillMatch{Method: types.MethodTooShort}
		}
	}

	if result.Score >= skillFuzzyThreshold || (result.Method == types.MethodExact && result.Score >= exactAcceptFloor) {
		return result, true
	}

	// Loose-substring fallback: compacted skill vs compacted tokens, substring
	// either direction.
	nameCompact := textnorm.Compact(name)
	for _, p := range parsedCompact {
		if p == "" || nameCompact == "" {
			continue
		}
		if strings.Contains(p, nameCompact) || strings.Contains(nameCompact, p) {
			if m.Blacklisted(p) || len(p) < minLooseTokenLen {
				continue
			}
			return types.SkillMatch{MatchedWith: p, Score: looseScore, Method: types.MethodLooseSubstr}, true
		}
	}

	return types.SkillMatch{Method: types.MethodNone}, false
}

// matchVariants runs the exact and fuzzy passes over the expanded variants.
func (m *SkillMatcher) matchVariants(variants, parsedCompact []string) types.SkillMatch {
	for _, v := range variants {
		vc := textnorm.Compact(v)
		for _, p := range parsedCompact {
			if vc != "" && vc == p {
				return types.SkillMatch{MatchedWith: vc, Score: 100, Method: types.MethodExact}
			}
		}
	}

	if m.fuzzy != nil {
		for _, v := range variants {
			vc := textnorm.Compact(v)
			if len(vc) < minFuzzyTokenLen {
				continue
			}
			best, _, score, ok := fuzzy.ExtractOne(m.fuzzy, vc, parsedCompact)
			if ok && score >= skillFuzzyThreshold {
				return types.SkillMatch{MatchedWith: best, Score: float64(score), Method: types.MethodFuzzy}
			}
		}
	}

	return types.SkillMatch{Method: types.MethodNone}
}

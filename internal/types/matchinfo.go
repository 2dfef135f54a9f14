package types

// Match methods recorded in MatchInfo. Blacklisted and too-short results are
// demoted matches and count as non-matches.
const (
	MethodExact       = "exact"
	MethodFuzzy       = "fuzzy"
	MethodLooseSubstr = "loose_substr"
	MethodNone        = "none"
	MethodBlacklisted = "blacklisted"
	MethodTooShort    = "too_short"
)

// SkillMatch records how a single required or optional skill was satisfied.
type SkillMatch struct {
	MatchedWith string  `json:"matched_with"`
	Score       float64 `json:"score"`
	Method      string  `json:"method"`
}

// DegreeMatch records how the required degree was (or was not) satisfied.
type DegreeMatch struct {
	Required    string  `json:"required"`
	Matched     bool    `json:"matched"`
	MatchedWith string  `json:"matched_with,omitempty"`
	Score       float64 `json:"score"`
	Method      string  `json:"method"`
}

// CountCheck records a numeric threshold check (experience, publications).
type CountCheck struct {
	Required int `json:"required"`
	Found    int `json:"found"`
}

// MatchInfo is the diagnostic summary produced for one (resume, criteria) pair.
// Every required skill appears in exactly one of MatchedRequired or
// MissingRequired.
type MatchInfo struct {
	Degree             DegreeMatch           `json:"degree"`
	Experience         CountCheck            `json:"experience"`
	Publications       CountCheck            `json:"publications"`
	MatchedRequired    map[string]SkillMatch `json:"matched_required"`
	MissingRequired    []string              `json:"missing_required"`
	MatchedOptional    map[string]SkillMatch `json:"matched_optional"`
	OptionalBonusCount int                   `json:"optional_bonus_count"`
}

// Verdict is the eligibility outcome for one (resume, criteria) pair.
// Reasons is the sole source of truth: Eligible is true iff Reasons is empty.
type Verdict struct {
	Eligible  bool      `json:"eligible"`
	Reasons   []string  `json:"reasons"`
	MatchInfo MatchInfo `json:"match_info"`
}

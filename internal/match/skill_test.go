package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/synonyms"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

func newTestSkillMatcher() *SkillMatcher {
	return NewSkillMatcher(synonyms.NewExpander(nil), fuzzy.NewMatcher(), nil)
}

func TestMatchExact(t *testing.T) {
	m := newTestSkillMatcher()

	sm, ok := m.Match("python", []string{"python", "react"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, sm.Method)
	assert.Equal(t, float64(100), sm.Score)
	assert.Equal(t, "python", sm.MatchedWith)
}

func TestMatchExactViaSynonym(t *testing.T) {
	m := newTestSkillMatcher()

	// Resume says "js"; the job asks for "javascript".
	sm, ok := m.Match("javascript", []string{"js"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, sm.Method)
	assert.Equal(t, float64(100), sm.Score)
}

func TestMatchExactCompactEquivalence(t *testing.T) {
	m := newTestSkillMatcher()

	sm, ok := m.Match("tailwindcss", []string{"tailwind css"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, sm.Method)
}

func TestMatchFuzzy(t *testing.T) {
	m := newTestSkillMatcher()

	sm, ok := m.Match("photoshop", []string{"photoshp"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodFuzzy, sm.Method)
	assert.GreaterOrEqual(t, sm.Score, float64(skillFuzzyThreshold))
}

func TestMatchFuzzyTooShortDemoted(t *testing.T) {
	// Fuzzy hits on tokens shorter than 4 compact characters are demoted.
	m := NewSkillMatcher(synonyms.NewExpander(types.Synonyms{}), fuzzy.NewMatcher(), nil)

	_, ok := m.Match("css", []string{"cs"}, nil, 0)
	assert.False(t, ok, "short variants never enter the fuzzy pass")
}

func TestMatchBlacklistDemoted(t *testing.T) {
	m := newTestSkillMatcher()

	tests := []struct {
		name   string
		skill  string
		parsed []string
	}{
		{"Exam board exact", "cbse", []string{"cbse"}},
		{"School token", "school", []string{"school"}},
		{"Token containing blacklisted term", "class", []string{"classroom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.Match(tt.skill, tt.parsed, nil, LooseScoreRequired)
			assert.False(t, ok, "blacklisted tokens must not count as skills")
		})
	}
}

func TestMatchLooseSubstring(t *testing.T) {
	m := newTestSkillMatcher()

	// Containment with partial-ratio available resolves in the fuzzy pass.
	sm, ok := m.Match("matlab", []string{"matlab simulink"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodFuzzy, sm.Method)

	// Variants too short for the fuzzy pass fall through to the loose pass.
	sm, ok = m.Match("css", []string{"css3 html"}, nil, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodLooseSubstr, sm.Method)
	assert.Equal(t, float64(LooseScoreRequired), sm.Score)

	sm, ok = m.Match("css", []string{"css3 html"}, nil, LooseScoreOptional)
	assert.True(t, ok)
	assert.Equal(t, float64(LooseScoreOptional), sm.Score)
}

func TestMatchMissing(t *testing.T) {
	m := newTestSkillMatcher()

	sm, ok := m.Match("kubernetes", []string{"python", "react"}, nil, LooseScoreRequired)
	assert.False(t, ok)
	assert.Equal(t, types.MethodNone, sm.Method)
	assert.Zero(t, sm.Score)
}

func TestMatchEmptyParsedSkills(t *testing.T) {
	m := newTestSkillMatcher()

	_, ok := m.Match("python", nil, nil, LooseScoreRequired)
	assert.False(t, ok)
}

func TestMatchPerJobSynonyms(t *testing.T) {
	m := newTestSkillMatcher()
	extra := types.Synonyms{"golang": {"go lang"}}

	sm, ok := m.Match("golang", []string{"go lang"}, extra, LooseScoreRequired)
	assert.True(t, ok)
	assert.Equal(t, types.MethodExact, sm.Method)
}

func TestMatchNilFuzzy(t *testing.T) {
	m := NewSkillMatcher(synonyms.NewExpander(nil), nil, nil)

	// Exact still works.
	_, ok := m.Match("python", []string{"python"}, nil, LooseScoreRequired)
	assert.True(t, ok)

	// A would-be fuzzy hit falls through; the loose pass catches containment.
	sm, ok := m.Match("photoshop", []string{"photoshp"}, nil, LooseScoreRequired)
	assert.False(t, ok, "photoshp does not contain photoshop: %+v", sm)
}

func TestBlacklisted(t *testing.T) {
	m := newTestSkillMatcher()

	assert.True(t, m.Blacklisted("cbse"))
	assert.True(t, m.Blacklisted("CBSE Board"))
	assert.True(t, m.Blacklisted("high school"))
	assert.False(t, m.Blacklisted("python"))
	assert.False(t, m.Blacklisted(""))
}

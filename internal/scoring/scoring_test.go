package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

func TestScorePerfectCandidate(t *testing.T) {
	c := types.Criteria{
		MinExperience:   2,
		MinPublications: 1,
		RequiredDegree:  "B.Tech",
		RequiredSkills:  []string{"python", "react"},
		OptionalSkills:  []string{"figma"},
	}
	parsed := types.ParsedResume{ExperienceYears: 4, Publications: 2}
	info := types.MatchInfo{
		Degree: types.DegreeMatch{Matched: true, Score: 100},
		MatchedRequired: map[string]types.SkillMatch{
			"python": {Score: 100}, "react": {Score: 100},
		},
		OptionalBonusCount: 1,
	}

	// 50 + 15 + 15 (4 years = 2x min) + 10 + 10.
	assert.Equal(t, float64(100), Score(parsed, c, info))
}

func TestScoreComponentMath(t *testing.T) {
	tests := []struct {
		name     string
		parsed   types.ParsedResume
		c        types.Criteria
		info     types.MatchInfo
		expected float64
	}{
		{
			name:     "Empty everything gives ambient credit",
			parsed:   types.ParsedResume{},
			c:        types.Criteria{},
			info:     types.MatchInfo{},
			expected: 65, // required 50 + experience 15 + degree 0 + optional 0 + publications 0
		},
		{
			name:   "Half the required skills",
			parsed: types.ParsedResume{},
			c:      types.Criteria{RequiredSkills: []string{"a", "b"}},
			info: types.MatchInfo{
				MatchedRequired: map[string]types.SkillMatch{"a": {Score: 100}},
			},
			expected: 40, // 25 + experience 15
		},
		{
			name:     "Experience linear to double the minimum",
			parsed:   types.ParsedResume{ExperienceYears: 2},
			c:        types.Criteria{MinExperience: 2},
			info:     types.MatchInfo{},
			expected: 57.5, // 50 + 0.5*15
		},
		{
			name:     "Degree partial credit",
			parsed:   types.ParsedResume{},
			c:        types.Criteria{},
			info:     types.MatchInfo{Degree: types.DegreeMatch{Score: 90}},
			expected: 78.5, // 50 + 13.5 + 15
		},
		{
			name:     "Optional fallback with no declared optionals",
			parsed:   types.ParsedResume{},
			c:        types.Criteria{},
			info:     types.MatchInfo{OptionalBonusCount: 1},
			expected: 70, // 50 + 15 + 10*(1/2)
		},
		{
			name:     "Publications bonus without minimum",
			parsed:   types.ParsedResume{Publications: 1},
			c:        types.Criteria{},
			info:     types.MatchInfo{},
			expected: 75, // 50 + 15 + 10
		},
		{
			name:     "Publications partial against minimum",
			parsed:   types.ParsedResume{Publications: 1},
			c:        types.Criteria{MinPublications: 4},
			info:     types.MatchInfo{},
			expected: 67.5, // 50 + 15 + 10*(1/4)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.parsed, tt.c, tt.info), 0.001)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	// Overfull inputs cannot push the score past 100.
	c := types.Criteria{RequiredSkills: []string{"a"}}
	info := types.MatchInfo{
		Degree:             types.DegreeMatch{Score: 500},
		MatchedRequired:    map[string]types.SkillMatch{"a": {}, "b": {}, "c": {}},
		OptionalBonusCount: 50,
	}
	parsed := types.ParsedResume{ExperienceYears: 40, Publications: 99}

	got := Score(parsed, c, info)
	assert.LessOrEqual(t, got, float64(100))
	assert.GreaterOrEqual(t, got, float64(0))
}

func TestScoreRounding(t *testing.T) {
	// 1 year against a 3-year minimum: 15/6 = 2.5 exactly; with a third of
	// required skills the raw sum carries repeating decimals.
	c := types.Criteria{MinExperience: 3, RequiredSkills: []string{"a", "b", "c"}}
	info := types.MatchInfo{MatchedRequired: map[string]types.SkillMatch{"a": {}}}
	parsed := types.ParsedResume{ExperienceYears: 1}

	got := Score(parsed, c, info)
	assert.Equal(t, 19.17, got, "score is rounded to two decimals")
}

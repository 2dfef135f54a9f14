package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

func TestDegreeLevel(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		expected int
	}{
		{"PhD", "PhD in Computer Science", LevelDoctorate},
		{"Doctor", "Doctor of Philosophy", LevelDoctorate},
		{"Ph.D dotted", "ph.d", LevelDoctorate},
		{"MTech dotted", "M.Tech Mechanical", LevelMaster},
		{"MTech joined", "mtech", LevelMaster},
		{"MS", "MS in Design", LevelMaster},
		{"Master phrase", "Master of Science", LevelMaster},
		{"ME", "ME Electrical", LevelMaster},
		{"BTech dotted", "B.Tech CSE", LevelBachelor},
		{"BTech joined", "btech", LevelBachelor},
		{"BE", "BE Mechanical", LevelBachelor},
		{"BDes", "B.Des", LevelBachelor},
		{"Bachelor phrase", "Bachelor of Design", LevelBachelor},
		{"BSc", "b.sc physics", LevelBachelor},
		{"No level", "Diploma in welding", LevelNone},
		{"Empty", "", LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DegreeLevel(tt.phrase))
		})
	}
}

func TestDegreeLevelOrderPhDBeforeMasters(t *testing.T) {
	// A phrase naming both levels resolves to the first keyword in table
	// order, which puts doctorates ahead of masters.
	assert.Equal(t, LevelDoctorate, DegreeLevel("PhD after M.Tech"))
}

func TestSubjectMatchesExact(t *testing.T) {
	tests := []struct {
		name     string
		required string
		degrees  []string
		matched  bool
	}{
		{"Mechanical equivalence", "M.Tech Mechanical", []string{"m.tech mechanical engineering"}, true},
		{"Computer via cse", "B.Tech Computer Science", []string{"b.tech cse"}, false},
		{"Computer spelled out", "B.Tech Computer Science", []string{"b.tech computer engineering"}, true},
		{"Design subject", "Bachelor of Design", []string{"bachelor of design"}, true},
		{"Design abbreviation alone", "Bachelor of Design", []string{"b.des"}, false},
		{"Subject absent", "M.Tech Mechanical", []string{"m.tech electronics"}, false},
		{"No degrees at all", "M.Tech Mechanical", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := SubjectMatches(tt.required, tt.degrees, nil)
			assert.Equal(t, tt.matched, dm.Matched)
			if tt.matched {
				assert.Equal(t, float64(100), dm.Score)
				assert.Equal(t, types.MethodExact, dm.Method)
				assert.NotEmpty(t, dm.MatchedWith)
			}
		})
	}
}

func TestSubjectMatchesFuzzy(t *testing.T) {
	dm := SubjectMatches("M.Tech Mechanical", []string{"m.tech mechancal engg"}, fuzzy.NewMatcher())
	assert.True(t, dm.Matched)
	assert.Equal(t, types.MethodFuzzy, dm.Method)
	assert.GreaterOrEqual(t, dm.Score, float64(82))
}

func TestSubjectMatchesFuzzySkippedWhenNil(t *testing.T) {
	dm := SubjectMatches("M.Tech Mechanical", []string{"m.tech mechancal engg"}, nil)
	assert.False(t, dm.Matched)
	assert.Equal(t, types.MethodNone, dm.Method)
}

func TestSubjectTokensFallback(t *testing.T) {
	// No equivalence entry applies; level-indicator words are stripped and
	// the first remaining token is the subject.
	dm := SubjectMatches("M.Tech Robotics", []string{"m.tech robotics lab"}, nil)
	assert.True(t, dm.Matched)
}

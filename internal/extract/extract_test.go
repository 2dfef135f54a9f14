package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/synonyms"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

func newTestExtractor() *Extractor {
	return New(synonyms.NewExpander(nil), NewPhraseMatcher(), fuzzy.NewMatcher())
}

func TestExtractContactFields(t *testing.T) {
	e := newTestExtractor()
	parsed := e.Extract("Jane Doe\njane.doe@univ.edu\n+91 98765-43210\n", nil, nil)

	assert.Equal(t, "jane.doe@univ.edu", parsed.Email)
	assert.NotEmpty(t, parsed.Phone)
	assert.Contains(t, parsed.Phone, "98765")
}

func TestExtractDegrees(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"BTech abbreviation", "Completed B.Tech in 2019", []string{"b.tech"}},
		{"BTech without dot", "BTech, IIT Delhi", []string{"btech"}},
		{"Bachelor phrase", "Bachelor of Design, NID", []string{"bachelor of design"}},
		{"MTech and PhD", "M.Tech (2018), Ph.D (2023)", []string{"m.tech", "ph.d"}},
		{"No degrees", "Worked as a developer", nil},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := e.Extract(tt.text, nil, nil)
			for _, want := range tt.expected {
				assert.Contains(t, parsed.Degrees, want)
			}
			if tt.expected == nil {
				assert.Empty(t, parsed.Degrees)
			}
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Single mention", "3 years of teaching", 3},
		{"Maximum wins over sum", "3 years at A, then 5 years at B", 5},
		{"Singular year not counted", "1 year of experience", 0},
		{"No mention", "taught for a while", 0},
		{"Two-digit cap", "12 years in industry", 12},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := e.Extract(tt.text, nil, nil)
			assert.Equal(t, tt.expected, parsed.ExperienceYears)
		})
	}
}

func TestExtractPublications(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Published 2 papers in an IEEE journal. DOI: 10.1000/x", nil, nil)
	// "published", "journal", "doi"
	assert.Equal(t, 3, parsed.Publications)

	parsed = e.Extract("No research output listed", nil, nil)
	assert.Zero(t, parsed.Publications)
}

func TestExtractSkillsSubstring(t *testing.T) {
	e := newTestExtractor()
	parsed := e.Extract("Frontend work with React and Tailwind CSS, deployed on Firebase.", nil, nil)

	assert.Contains(t, parsed.Skills, "react")
	assert.Contains(t, parsed.Skills, "tailwind css")
	assert.Contains(t, parsed.Skills, "firebase")
}

func TestExtractSkillsVariantSpelling(t *testing.T) {
	e := newTestExtractor()
	parsed := e.Extract("Shipped features in JS and React.js", []string{"javascript", "react"}, nil)

	assert.Contains(t, parsed.Skills, "js")
	found := false
	for _, s := range parsed.Skills {
		if strings.HasPrefix(s, "react") {
			found = true
		}
	}
	assert.True(t, found, "some react variant should be detected, got %v", parsed.Skills)
}

func TestExtractSkillsFuzzyFallback(t *testing.T) {
	e := newTestExtractor()
	// "pythn" is not in any table; only the fuzzy pass against the expected
	// skill can pick it up.
	parsed := e.Extract("Scripting in pythn for data cleanup", []string{"python"}, nil)
	assert.Contains(t, parsed.Skills, "pythn")
}

func TestExtractSkillsFuzzySkippedWithoutExpected(t *testing.T) {
	e := newTestExtractor()
	parsed := e.Extract("Scripting in pythn for data cleanup", nil, nil)
	assert.NotContains(t, parsed.Skills, "pythn")
}

func TestExtractSoftSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"Team stem", "Led a team of five", true},
		{"Collaboration stem", "collaborated across departments", true},
		{"Client stem", "client facing role", true},
		{"No stems", "wrote compilers", false},
	}

	e := newTestExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := e.Extract(tt.text, nil, nil)
			if tt.want {
				assert.Contains(t, parsed.Skills, "communication")
			} else {
				assert.NotContains(t, parsed.Skills, "communication")
			}
		})
	}
}

func TestExtractPerJobSynonyms(t *testing.T) {
	e := newTestExtractor()
	extra := types.Synonyms{"golang": {"go lang"}}
	parsed := e.Extract("Backend services in go lang", []string{"golang"}, extra)

	assert.Contains(t, parsed.Skills, "go lang")
}

func TestExtractExcerptBounded(t *testing.T) {
	e := newTestExtractor()
	long := strings.Repeat("x", maxExcerptLen+500)
	parsed := e.Extract(long, nil, nil)

	assert.Len(t, parsed.RawTextExcerpt, maxExcerptLen)

	short := "short resume"
	assert.Equal(t, short, e.Extract(short, nil, nil).RawTextExcerpt)
}

func TestExtractNilStrategies(t *testing.T) {
	// No phrase or fuzzy capability: extraction still works on substrings.
	e := New(synonyms.NewExpander(nil), nil, nil)
	parsed := e.Extract("python and react developer, 4 years", []string{"python"}, nil)

	assert.Contains(t, parsed.Skills, "python")
	assert.Contains(t, parsed.Skills, "react")
	assert.Equal(t, 4, parsed.ExperienceYears)
}

func TestExtractEmptyText(t *testing.T) {
	e := newTestExtractor()
	parsed := e.Extract("", nil, nil)

	assert.Empty(t, parsed.Skills)
	assert.Empty(t, parsed.Degrees)
	assert.Zero(t, parsed.ExperienceYears)
	assert.Zero(t, parsed.Publications)
	assert.Empty(t, parsed.Email)
}

func TestFindPhrases(t *testing.T) {
	m := NewPhraseMatcher()

	hits := m.FindPhrases("worked with tailwind css daily", []string{"tailwind css", "react"})
	assert.Equal(t, []string{"tailwind css"}, hits)

	hits = m.FindPhrases("rest apis everywhere", []string{"rest api"})
	assert.Empty(t, hits, "token boundaries must hold")
}

package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialRatio(t *testing.T) {
	m := NewMatcher()

	assert.Equal(t, 100, m.PartialRatio("python", "python"))
	assert.Equal(t, 100, m.PartialRatio("python", "python programming"), "substring scores 100")
	assert.Zero(t, m.PartialRatio("", "python"))
	assert.Zero(t, m.PartialRatio("python", ""))

	near := m.PartialRatio("tailwindcss", "tailwindcs")
	assert.GreaterOrEqual(t, near, 82, "one-character drop stays above threshold")

	far := m.PartialRatio("python", "photoshop")
	assert.Less(t, far, 82)
}

func TestExtractOne(t *testing.T) {
	m := NewMatcher()
	choices := []string{"photoshop", "figma", "pythn"}

	best, idx, score, ok := ExtractOne(m, "python", choices)
	assert.True(t, ok)
	assert.Equal(t, "pythn", best)
	assert.Equal(t, 2, idx)
	assert.GreaterOrEqual(t, score, 82)
}

func TestExtractOneNilMatcher(t *testing.T) {
	_, idx, score, ok := ExtractOne(nil, "python", []string{"python"})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Zero(t, score)
}

func TestExtractOneEmptyChoices(t *testing.T) {
	m := NewMatcher()
	_, _, _, ok := ExtractOne(m, "python", nil)
	assert.False(t, ok)

	_, _, _, ok = ExtractOne(m, "", []string{"python"})
	assert.False(t, ok)
}

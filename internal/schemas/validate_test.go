package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCriteriaValid(t *testing.T) {
	docs := []string{
		`{}`,
		`{"min_experience": 2}`,
		`{"min_experience": 2, "min_publications": 1, "required_degree": "M.Tech Mechanical Engineering",
		  "required_skills": ["python", "react"], "optional_skills": ["figma"],
		  "extra_synonyms": {"golang": ["go lang"]}}`,
	}

	for _, doc := range docs {
		assert.NoError(t, ValidateCriteria([]byte(doc)), "doc: %s", doc)
	}
}

func TestValidateCriteriaInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Negative experience", `{"min_experience": -1}`},
		{"Non-integer experience", `{"min_experience": "two"}`},
		{"Skills not array", `{"required_skills": "python"}`},
		{"Empty skill name", `{"required_skills": [""]}`},
		{"Unknown field", `{"min_exp": 2}`},
		{"Synonyms wrong shape", `{"extra_synonyms": {"golang": "go"}}`},
		{"Not an object", `["python"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCriteria([]byte(tt.doc))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
			assert.NotEmpty(t, ve.Errors)
			assert.Contains(t, ve.Error(), "criteria validation failed")
		})
	}
}

func TestValidateCriteriaMalformedJSON(t *testing.T) {
	err := ValidateCriteria([]byte(`{"min_experience":`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "malformed JSON is not a schema violation")
}

// Package types defines the shared data model for the screening engine.
package types

// Criteria represents the eligibility and scoring rules attached to a job posting.
// All fields are optional; zero values mean "no requirement".
type Criteria struct {
	MinExperience   int      `json:"min_experience"`             // Minimum years of experience
	MinPublications int      `json:"min_publications"`           // Minimum publication-indicator count
	RequiredDegree  string   `json:"required_degree,omitempty"`  // e.g. "M.Tech Mechanical Engineering"
	RequiredSkills  []string `json:"required_skills"`            // Every entry must match for eligibility
	OptionalSkills  []string `json:"optional_skills"`            // Matched entries add a ranking bonus only
	ExtraSynonyms   Synonyms `json:"extra_synonyms,omitempty"`   // Per-job synonym overrides (canonical -> variants)
}

// Synonyms maps a canonical skill or subject name to its textual variants.
type Synonyms map[string][]string

package types

// ParsedResume is the structured fact record extracted from a resume's raw text.
// It is created once per resume by the extractor and never mutated afterwards.
type ParsedResume struct {
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Degrees         []string `json:"degrees"`          // Raw degree phrases, normalized
	ExperienceYears int      `json:"experience_years"` // Maximum observed, not a sum
	Publications    int      `json:"publications"`     // Keyword-occurrence count, not distinct works
	Skills          []string `json:"skills"`           // Sorted, normalized, deduplicated
	RawTextExcerpt  string   `json:"raw_text_excerpt"` // First 4000 bytes of the source text
}

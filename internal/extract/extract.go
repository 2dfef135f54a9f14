// Package extract turns raw resume text into a structured fact record:
// contact fields, degree phrases, experience years, publication count and a
// deduplicated skill set. Extraction is best-effort and never fails; optional
// strategies (phrase matching, fuzzy matching) are skipped when absent.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/synonyms"
	"github.com/Sayak1321/faculty-recruitment-system/internal/textnorm"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

const (
	// maxExcerptLen bounds the raw-text excerpt carried on the fact record.
	maxExcerptLen = 4000
	// maxPhraseWords bounds candidate variants offered to the phrase matcher.
	maxPhraseWords = 6
	// tokenFuzzyThreshold accepts fuzzy hits between expected skills and
	// resume-side heuristic tokens.
	tokenFuzzyThreshold = 80
)

var (
	reEmail = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	rePhone = regexp.MustCompile(`\+?\d[\d\-\s]{7,}\d`)
	reYears = regexp.MustCompile(`(\d{1,2})\s+years`)

	// Degree phrase heuristics for common abbreviations and "bachelor of X"
	// phrasing.
	reDegrees = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bb\.?tech\b`),
		regexp.MustCompile(`(?i)\bb\.?des\b`),
		regexp.MustCompile(`(?i)\bbachelor of [a-z ]+\b`),
		regexp.MustCompile(`(?i)\bm\.?tech\b`),
		regexp.MustCompile(`(?i)\bph\.?d\b`),
	}

	rePublications = regexp.MustCompile(`(?i)\b(publication|published|journal|conference|doi)\b`)

	// Soft-skill keyword stems; any hit yields a synthetic "communication"
	// skill.
	softSkillStems = []string{"communication", "interpersonal", "presentation", "collaborat", "team", "client"}
)

// Extractor scans resume text for facts. Phrase and fuzzy matchers are
// optional capabilities; a nil strategy disables that pass and degrades recall
// without failing extraction.
type Extractor struct {
	expander *synonyms.Expander
	phrases  PhraseMatcher
	fuzzy    fuzzy.Matcher
}

// New creates an extractor. expander must not be nil; phrases and fz may be.
func New(expander *synonyms.Expander, phrases PhraseMatcher, fz fuzzy.Matcher) *Extractor {
	return &Extractor{expander: expander, phrases: phrases, fuzzy: fz}
}

// Extract parses rawText into a fact record. expectedSkills focuses detection
// on the skills a job asks for; extra carries per-job synonym overrides. Both
// may be empty.
func (e *Extractor) Extract(rawText string, expectedSkills []string, extra types.Synonyms) types.ParsedResume {
	norm := textnorm.Normalize(rawText)

	parsed := types.ParsedResume{
		Email:           reEmail.FindString(rawText),
		Phone:           rePhone.FindString(rawText),
		Degrees:         e.extractDegrees(rawText),
		ExperienceYears: extractExperienceYears(rawText),
		Publications:    len(rePublications.FindAllString(rawText, -1)),
		RawTextExcerpt:  excerpt(rawText),
	}

	// Candidate variant set: expected skills expanded through the synonym
	// table, plus every entry the table knows so that unrequested skills are
	// still detected.
	candidates := e.expander.CandidateSet(extra)
	for _, s := range expectedSkills {
		for _, v := range e.expander.Variants(s, extra) {
			candidates[v] = struct{}{}
		}
	}
	candidateList := sortedKeys(candidates)

	found := make(map[string]struct{})
	add := func(s string) {
		if n := textnorm.Normalize(s); n != "" {
			found[n] = struct{}{}
		}
	}

	// Pass 1: structural phrase matching (optional capability).
	if e.phrases != nil {
		var phrases []string
		for _, v := range candidateList {
			if len(strings.Fields(v)) <= maxPhraseWords {
				phrases = append(phrases, v)
			}
		}
		for _, hit := range e.phrases.FindPhrases(rawText, phrases) {
			add(hit)
		}
	}

	// Pass 2: substring and compact scanning.
	compactText := textnorm.CompactNormalized(norm)
	for _, v := range candidateList {
		if strings.Contains(norm, v) || strings.Contains(compactText, strings.ReplaceAll(v, " ", "")) {
			add(v)
		}
	}

	// Pass 3: heuristic token overlap, substring either direction.
	tokens := textnorm.HeuristicTokens(rawText)
	for _, tok := range tokens {
		for _, v := range candidateList {
			if strings.Contains(tok, v) || strings.Contains(v, tok) {
				add(v)
			}
		}
	}

	// Pass 4: fuzzy fallback, expected skills only (optional capability).
	if e.fuzzy != nil && len(expectedSkills) > 0 {
		compactTokens := make([]string, len(tokens))
		for i, tok := range tokens {
			compactTokens[i] = textnorm.CompactNormalized(tok)
		}
		for _, s := range expectedSkills {
			_, idx, score, ok := fuzzy.ExtractOne(e.fuzzy, textnorm.Compact(s), compactTokens)
			if ok && score >= tokenFuzzyThreshold {
				add(tokens[idx])
			}
		}
	}

	// Pass 5: soft-skill detection.
	for _, stem := range softSkillStems {
		if strings.Contains(norm, stem) {
			add("communication")
			break
		}
	}

	parsed.Skills = sortedKeys(found)
	return parsed
}

func (e *Extractor) extractDegrees(rawText string) []string {
	var degrees []string
	seen := make(map[string]struct{})
	for _, re := range reDegrees {
		for _, m := range re.FindAllString(rawText, -1) {
			n := textnorm.Normalize(m)
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			degrees = append(degrees, n)
		}
	}
	return degrees
}

// extractExperienceYears takes the maximum integer immediately followed by
// "years" anywhere in the text. The maximum, not the sum: a resume stating
// both "3 years" and "5 years" yields 5.
func extractExperienceYears(rawText string) int {
	years := 0
	for _, m := range reYears.FindAllStringSubmatch(strings.ToLower(rawText), -1) {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v > years {
			years = v
		}
	}
	return years
}

func excerpt(s string) string {
	if len(s) <= maxExcerptLen {
		return s
	}
	return s[:maxExcerptLen]
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

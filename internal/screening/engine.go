// Package screening orchestrates the matching engine end to end: raw resume
// text in, fact record, verdict and ranking score out. It also re-evaluates
// stored applications when a job's criteria change.
package screening

import (
	"github.com/Sayak1321/faculty-recruitment-system/internal/eligibility"
	"github.com/Sayak1321/faculty-recruitment-system/internal/extract"
	"github.com/Sayak1321/faculty-recruitment-system/internal/fuzzy"
	"github.com/Sayak1321/faculty-recruitment-system/internal/match"
	"github.com/Sayak1321/faculty-recruitment-system/internal/scoring"
	"github.com/Sayak1321/faculty-recruitment-system/internal/synonyms"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

// Result bundles everything one evaluation produces. These are the fields the
// surrounding system persists and displays.
type Result struct {
	Parsed    types.ParsedResume `json:"parsed"`
	Eligible  bool               `json:"eligible"`
	Reasons   []string           `json:"reasons"`
	MatchInfo types.MatchInfo    `json:"match_info"`
	Score     float64            `json:"score"`
}

// Engine wires the normalizer, synonym expander, extractor, matchers,
// evaluator and scorer into one synchronous pipeline. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	extractor *extract.Extractor
	evaluator *eligibility.Evaluator
}

// NewEngine builds an engine with the default capabilities: the curated
// synonym table, token-boundary phrase matching and partial-ratio fuzzy
// matching.
func NewEngine() *Engine {
	expander := synonyms.NewExpander(nil)
	fz := fuzzy.NewMatcher()
	return &Engine{
		extractor: extract.New(expander, extract.NewPhraseMatcher(), fz),
		evaluator: eligibility.New(match.NewSkillMatcher(expander, fz, nil), fz),
	}
}

// NewEngineWith builds an engine with explicit capabilities. Either matcher
// may be nil; the corresponding strategy is then skipped during extraction and
// matching, degrading recall but never failing.
func NewEngineWith(expander *synonyms.Expander, phrases extract.PhraseMatcher, fz fuzzy.Matcher) *Engine {
	return &Engine{
		extractor: extract.New(expander, phrases, fz),
		evaluator: eligibility.New(match.NewSkillMatcher(expander, fz, nil), fz),
	}
}

// Screen runs the full pipeline for one resume text against one job's
// criteria. It never fails; missing criteria fields act as zero/empty
// requirements.
func (e *Engine) Screen(rawText string, c types.Criteria) Result {
	expected := make([]string, 0, len(c.RequiredSkills)+len(c.OptionalSkills))
	expected = append(expected, c.RequiredSkills...)
	expected = append(expected, c.OptionalSkills...)

	parsed := e.extractor.Extract(rawText, expected, c.ExtraSynonyms)
	verdict := e.evaluator.Evaluate(parsed, c)
	score := scoring.Score(parsed, c, verdict.MatchInfo)

	return Result{
		Parsed:    parsed,
		Eligible:  verdict.Eligible,
		Reasons:   verdict.Reasons,
		MatchInfo: verdict.MatchInfo,
		Score:     score,
	}
}

// Evaluate re-runs eligibility and scoring over an already parsed resume,
// used when criteria change but the stored facts are still valid.
func (e *Engine) Evaluate(parsed types.ParsedResume, c types.Criteria) Result {
	verdict := e.evaluator.Evaluate(parsed, c)
	return Result{
		Parsed:    parsed,
		Eligible:  verdict.Eligible,
		Reasons:   verdict.Reasons,
		MatchInfo: verdict.MatchInfo,
		Score:     scoring.Score(parsed, c, verdict.MatchInfo),
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Sayak1321/faculty-recruitment-system/internal/screening"
	"github.com/Sayak1321/faculty-recruitment-system/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of extracted facts.
func (p *Printer) PrintParsedResume(parsed types.ParsedResume) {
	var sb strings.Builder

	if parsed.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:        %s\n", parsed.Email))
	}
	if parsed.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:        %s\n", parsed.Phone))
	}
	sb.WriteString(fmt.Sprintf("Experience:   %d years\n", parsed.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Publications: %d\n", parsed.Publications))

	if len(parsed.Degrees) > 0 {
		sb.WriteString("\nDegrees:\n")
		for _, d := range parsed.Degrees {
			sb.WriteString(fmt.Sprintf("  • %s\n", d))
		}
	}

	if len(parsed.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(parsed.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.Skills[i]))
		}
		if len(parsed.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED FACTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVerdict outputs the eligibility decision with its reasons and the
// per-skill match breakdown.
func (p *Printer) PrintVerdict(result screening.Result) {
	var sb strings.Builder

	if result.Eligible {
		sb.WriteString("Eligible: YES\n")
	} else {
		sb.WriteString("Eligible: NO\n")
	}

	if len(result.Reasons) > 0 {
		sb.WriteString("\nReasons:\n")
		for _, reason := range result.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	info := result.MatchInfo
	sb.WriteString(fmt.Sprintf("\nDegree: %s", formatDegree(info.Degree)))
	sb.WriteString(fmt.Sprintf("\nExperience: %d found / %d required", info.Experience.Found, info.Experience.Required))
	sb.WriteString(fmt.Sprintf("\nPublications: %d found / %d required\n", info.Publications.Found, info.Publications.Required))

	if len(info.MatchedRequired) > 0 {
		sb.WriteString("\nMatched required skills:\n")
		for _, name := range sortedSkillNames(info.MatchedRequired) {
			m := info.MatchedRequired[name]
			sb.WriteString(fmt.Sprintf("  • %s → %s (%g, %s)\n", name, m.MatchedWith, m.Score, m.Method))
		}
	}
	if len(info.MissingRequired) > 0 {
		sb.WriteString("\nMissing required skills:\n")
		for _, name := range info.MissingRequired {
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
	}
	if info.OptionalBonusCount > 0 {
		sb.WriteString(fmt.Sprintf("\nOptional skills matched: %d\n", info.OptionalBonusCount))
	}

	p.printBox("ELIGIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the final ranking score.
func (p *Printer) PrintScore(score float64) {
	p.printBox("SCORE", fmt.Sprintf("Ranking score: %.2f / 100", score))
}

func formatDegree(dm types.DegreeMatch) string {
	if dm.Required == "" {
		return "not required"
	}
	if dm.Matched {
		return fmt.Sprintf("%s ✓ (%s, %g)", dm.Required, dm.Method, dm.Score)
	}
	return fmt.Sprintf("%s ✗ (%s)", dm.Required, dm.Method)
}

func sortedSkillNames(m map[string]types.SkillMatch) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of per-category coverage bars
	barWidth = 20
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

// PrintGapResult outputs a human-readable summary of a gap analysis.
func (p *Printer) PrintGapResult(result *types.GapScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:       %s (%s)\n", result.RoleType, result.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Score:      %.1f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", result.Readiness))
	sb.WriteString(fmt.Sprintf("Matched:    %d/%d required skills\n",
		len(result.Report.MatchedRequired),
		len(result.Report.MatchedRequired)+len(result.Report.UnmatchedRequired)))
	if result.InsufficientData {
		sb.WriteString("Note:       insufficient data (no required skills)\n")
	}

	if len(result.Categories) > 0 {
		sb.WriteString("\nCoverage by category:\n")
		for _, c := range result.Categories {
			sb.WriteString(fmt.Sprintf("  %-16s %s %5.1f%%\n", c.Category, coverageBar(c.Coverage), c.Coverage))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nTop missing skills:\n")
		for i, ms := range result.MissingSkills {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  %d. %s (%s, %s)\n", i+1, ms.Skill, ms.Difficulty, ms.LearningTime))
		}
	}

	p.printBox("Skill Gap Analysis", sb.String())
}

// PrintRoadmap outputs a human-readable summary of a learning roadmap.
func (p *Printer) PrintRoadmap(plan *types.RoadmapPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Weeks:      %d\n", len(plan.Weeks)))
	sb.WriteString(fmt.Sprintf("Hours:      %.0f total\n", plan.TotalHours))
	sb.WriteString(fmt.Sprintf("Finish by:  %s\n", plan.ProjectedEnd.Format("2006-01-02")))
	if plan.Compressed {
		sb.WriteString("Note:       plan compressed to fit the target weeks\n")
	}

	for i, week := range plan.Weeks {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more weeks\n", len(plan.Weeks)-maxItemsToShow))
			break
		}
		names := make([]string, 0, len(week.Skills))
		for _, s := range week.Skills {
			names = append(names, s.String())
		}
		sb.WriteString(fmt.Sprintf("Week %-2d     %s (%.0fh)\n", week.Week, strings.Join(names, ", "), week.Hours))
	}

	if len(plan.Milestones) > 0 {
		sb.WriteString("\nMilestones:\n")
		for _, m := range plan.Milestones {
			sb.WriteString(fmt.Sprintf("  week %-2d  %s\n", m.Week, m.Description))
		}
	}

	p.printBox("Learning Roadmap", sb.String())
}

// coverageBar renders a fixed-width bar for a 0-100 coverage value.
func coverageBar(coverage float64) string {
	filled := int(coverage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

func appendList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintCandidateRecord outputs a human-readable summary of the extracted CV.
func (p *Printer) PrintCandidateRecord(rec *types.CandidateRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", rec.Personal.Name))
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(rec.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(rec.Education)))
	sb.WriteString(fmt.Sprintf("Projects:   %d entries\n", len(rec.Projects)))
	sb.WriteString("\n")
	appendList(&sb, "Skills", rec.AllSkillTokens(), maxItemsToShow)

	p.printBox("CANDIDATE RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillAnalysis outputs the inferred skill analysis.
func (p *Printer) PrintSkillAnalysis(analysis *types.SkillAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Years of experience: %d\n", analysis.Seniority.YearsExperience))
	sb.WriteString(fmt.Sprintf("Leadership: %t  Architecture: %t\n\n", analysis.Seniority.Leadership, analysis.Seniority.Architecture))
	appendList(&sb, "Technical", analysis.Explicit.Technical, maxItemsToShow)

	if len(analysis.Implicit) > 0 {
		sb.WriteString("Inferred:\n")
		count := min(len(analysis.Implicit), maxItemsToShow)
		for i := 0; i < count; i++ {
			imp := analysis.Implicit[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f)\n", imp.Skill, imp.Confidence))
		}
		if len(analysis.Implicit) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Implicit)-maxItemsToShow))
		}
	}

	p.printBox("SKILL ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarketProfile outputs the resolved market profile.
func (p *Printer) PrintMarketProfile(profile *types.MarketProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:   %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Demand: %s\n", profile.Demand.Display()))
	sb.WriteString(fmt.Sprintf("Source: %s\n\n", profile.Source))
	appendList(&sb, "Core requirements", profile.CoreRequirements, maxItemsToShow)
	appendList(&sb, "Preferred", profile.PreferredQualifications, 3)

	p.printBox("MARKET PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapSummary outputs the gap list grouped by priority.
func (p *Printer) PrintGapSummary(gaps []types.GapEntry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total gaps assessed: %d\n\n", len(gaps)))

	for _, priority := range []types.GapPriority{types.PriorityCritical, types.PriorityImportant, types.PriorityNiceToHave} {
		var names []string
		for _, gap := range gaps {
			if gap.Priority == priority {
				names = append(names, gap.Skill)
			}
		}
		appendList(&sb, priority.Display(), names, maxItemsToShow)
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// maxGoalsPerPhase bounds how many gap-derived goals one roadmap phase lists.
const maxGoalsPerPhase = 4

// TemplateData is the data structure passed to the Markdown template.
type TemplateData struct {
	Role          string
	Summary       string
	CandidateName string
	Years         int
	Leadership    string
	Architecture  string
	Technical     []string
	Domain        []string
	Soft          []string
	Implicit      []types.ImplicitSkill
	Transferable  []types.TransferableSkill

	Demand     string
	Salary     string
	Core       []string
	Preferred  []string
	Trends     []string
	Growth     []string
	DataSource string

	GapRows   []GapRow
	Phases    []Phase
	Resources []ResourceEntry
}

// GapRow is one row of the gap analysis table.
type GapRow struct {
	Skill    string
	Level    string
	Gap      string
	Priority string
	Evidence string
}

// Phase is one two-week block of the upskilling roadmap.
type Phase struct {
	Number int
	Weeks  string
	Title  string
	Goals  []string
}

const markdownTemplate = `# Skill Gap Analysis: {{.Role}}

## Executive Summary

{{.Summary}}

## Candidate Profile

- **Name**: {{.CandidateName}}
- **Years of experience**: {{.Years}}
- **Leadership signals**: {{.Leadership}}
- **Architecture signals**: {{.Architecture}}

**Technical skills**: {{join .Technical}}

**Domain skills**: {{join .Domain}}

**Soft skills**: {{join .Soft}}
{{if .Implicit}}
**Inferred capabilities**:
{{range .Implicit}}- {{.Skill}} (confidence {{printf "%.1f" .Confidence}}) - evidence: "{{.Evidence}}"
{{end}}{{end}}{{if .Transferable}}
**Transferable skills**:
{{range .Transferable}}- {{.Skill}} (from {{.FromDomain}}) - evidence: "{{.Evidence}}"
{{end}}{{end}}
## Market Requirements

- **Market demand**: {{.Demand}}
- **Salary range**: {{.Salary}}
- **Data source**: {{.DataSource}}

**Core requirements**: {{join .Core}}

**Preferred qualifications**: {{join .Preferred}}

**Emerging trends**: {{join .Trends}}

**Growth areas**: {{join .Growth}}

## Gap Analysis

| Skill | Current Level | Gap | Priority |
|-------|---------------|-----|----------|
{{range .GapRows}}| {{.Skill}} | {{.Level}} | {{.Gap}} | {{.Priority}} |
{{end}}
## Upskilling Roadmap
{{range .Phases}}
### Phase {{.Number}} (Weeks {{.Weeks}}): {{.Title}}
{{range .Goals}}
- {{.}}{{end}}
{{end}}
## Recommended Resources
{{range .Resources}}
**{{.Skill}}**
{{range .Materials}}- {{.}}
{{end}}{{end}}`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": joinOrNone,
}).Parse(markdownTemplate))

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None detected"
	}
	return strings.Join(items, ", ")
}

// Render produces the final Markdown report. It never fails on empty
// inputs; every mandated section is emitted even when upstream stages
// returned empty or fallback data.
func Render(rec *types.CandidateRecord, analysis *types.SkillAnalysis, profile *types.MarketProfile, gaps []types.GapEntry) (string, error) {
	data := buildTemplateData(rec, analysis, profile, gaps)

	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return sb.String(), nil
}

func buildTemplateData(rec *types.CandidateRecord, analysis *types.SkillAnalysis, profile *types.MarketProfile, gaps []types.GapEntry) *TemplateData {
	name := rec.Personal.Name
	if name == "" {
		name = "Not detected"
	}

	data := &TemplateData{
		Role:          profile.Role,
		Summary:       executiveSummary(rec, analysis, profile, gaps),
		CandidateName: name,
		Years:         analysis.Seniority.YearsExperience,
		Leadership:    yesNo(analysis.Seniority.Leadership),
		Architecture:  yesNo(analysis.Seniority.Architecture),
		Technical:     analysis.Explicit.Technical,
		Domain:        analysis.Explicit.Domain,
		Soft:          analysis.Explicit.Soft,
		Implicit:      analysis.Implicit,
		Transferable:  analysis.Transferable,
		Demand:        profile.Demand.Display(),
		Salary:        salaryLine(profile.Salary),
		Core:          profile.CoreRequirements,
		Preferred:     profile.PreferredQualifications,
		Trends:        profile.EmergingTrends,
		Growth:        profile.GrowthAreas,
		DataSource:    profile.Source,
		Phases:        buildRoadmap(gaps),
		Resources:     RecommendResources(gaps),
	}

	for _, gap := range gaps {
		data.GapRows = append(data.GapRows, GapRow{
			Skill:    gap.Skill,
			Level:    gap.CurrentLevel.Display(),
			Gap:      gap.Gap.Display(),
			Priority: gap.Priority.Display(),
			Evidence: gap.Evidence,
		})
	}
	if len(data.GapRows) == 0 {
		data.GapRows = append(data.GapRows, GapRow{
			Skill: "No gaps identified", Level: "-", Gap: "-", Priority: "-",
		})
	}

	return data
}

func executiveSummary(rec *types.CandidateRecord, analysis *types.SkillAnalysis, profile *types.MarketProfile, gaps []types.GapEntry) string {
	subject := rec.Personal.Name
	if subject == "" {
		subject = "The candidate"
	}

	critical, important := 0, 0
	for _, gap := range gaps {
		switch gap.Priority {
		case types.PriorityCritical:
			critical++
		case types.PriorityImportant:
			important++
		}
	}

	return fmt.Sprintf(
		"%s was assessed against the %s role, where market demand is currently %s. "+
			"The analysis found %d technical skills on record, %d critical gaps, and %d important gaps. "+
			"The roadmap below targets the critical gaps first over a six-week plan.",
		subject, profile.Role, strings.ToLower(profile.Demand.Display()),
		len(analysis.Explicit.Technical), critical, important)
}

func salaryLine(s types.SalaryRange) string {
	if s.Min == 0 && s.Max == 0 {
		return "Not available"
	}
	return fmt.Sprintf("%s %d - %d", s.Currency, s.Min, s.Max)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// buildRoadmap assigns critical gaps to phase 1 and important gaps to
// phase 2, with phase 3 reserved for portfolio work and review. Phases
// short on gap-derived goals are padded with generic skill-mastery goals
// so the roadmap always has exactly three populated phases.
func buildRoadmap(gaps []types.GapEntry) []Phase {
	var critical, important []string
	for _, gap := range gaps {
		switch gap.Priority {
		case types.PriorityCritical:
			if len(critical) < maxGoalsPerPhase {
				critical = append(critical, "Build working knowledge of "+gap.Skill)
			}
		case types.PriorityImportant:
			if len(important) < maxGoalsPerPhase {
				important = append(important, "Develop hands-on practice with "+gap.Skill)
			}
		}
	}

	if len(critical) == 0 {
		critical = []string{"Strengthen fundamentals across the role's core requirements"}
	}
	if len(important) == 0 {
		important = []string{"Deepen proficiency with the tools already in use"}
	}

	return []Phase{
		{Number: 1, Weeks: "1-2", Title: "Critical Foundations", Goals: critical},
		{Number: 2, Weeks: "3-4", Title: "Important Skills", Goals: important},
		{Number: 3, Weeks: "5-6", Title: "Portfolio & Review", Goals: []string{
			"Build a portfolio project that exercises the newly acquired skills",
			"Review progress against the role requirements and adjust focus",
		}},
	}
}

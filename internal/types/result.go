//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// SkillLevel is the candidate's assessed level for a required skill.
type SkillLevel string

// Skill levels, lowest to highest.
const (
	LevelNone         SkillLevel = "none"
	LevelBasic        SkillLevel = "basic"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Display returns the human-readable form used in rendered reports.
func (l SkillLevel) Display() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelBasic:
		return "Basic"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "None"
	}
}

// GapSize is the severity of a skill gap.
type GapSize string

// Gap severities.
const (
	GapLow    GapSize = "low"
	GapMedium GapSize = "medium"
	GapHigh   GapSize = "high"
)

// Display returns the human-readable form used in rendered reports.
func (g GapSize) Display() string {
	switch g {
	case GapLow:
		return "Low"
	case GapMedium:
		return "Medium"
	case GapHigh:
		return "High"
	default:
		return "High"
	}
}

// GapPriority is the remediation priority of a skill gap.
type GapPriority string

// Gap priorities.
const (
	PriorityCritical   GapPriority = "critical"
	PriorityImportant  GapPriority = "important"
	PriorityNiceToHave GapPriority = "nice-to-have"
)

// Display returns the human-readable form used in rendered reports.
func (p GapPriority) Display() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityImportant:
		return "Important"
	case PriorityNiceToHave:
		return "Nice-to-have"
	default:
		return "Nice-to-have"
	}
}

// GapEntry compares one market requirement against the candidate's skills.
type GapEntry struct {
	Skill        string      `json:"skill"`
	CurrentLevel SkillLevel  `json:"current_level"`
	Gap          GapSize     `json:"gap"`
	Priority     GapPriority `json:"priority"`
	Evidence     string      `json:"evidence"`
	FromCore     bool        `json:"from_core"`
}

// AnalysisResult is the terminal artifact of a pipeline run. No further
// mutation occurs after assembly.
type AnalysisResult struct {
	RunID     uuid.UUID        `json:"run_id"`
	Candidate *CandidateRecord `json:"candidate"`
	Skills    *SkillAnalysis   `json:"skill_analysis"`
	Market    *MarketProfile   `json:"market_profile"`
	Gaps      []GapEntry       `json:"gaps"`
	Report    string           `json:"report"`
	Warnings  []string         `json:"warnings"`
}

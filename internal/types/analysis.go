//nolint:revive // types is a standard Go package name pattern
package types

// Sections an inference can cite as its origin.
const (
	EvidenceSourceSkills     = "skills"
	EvidenceSourceExperience = "experience"
	EvidenceSourceProjects   = "projects"
)

// SkillAnalysis is the immutable output of the skill inferrer.
type SkillAnalysis struct {
	Explicit     ExplicitSkills      `json:"explicit_skills"`
	Implicit     []ImplicitSkill     `json:"implicit_skills"`
	Transferable []TransferableSkill `json:"transferable_skills"`
	Seniority    SeniorityIndicators `json:"seniority_indicators"`
}

// ExplicitSkills groups skills literally present in the CV.
type ExplicitSkills struct {
	Technical []string `json:"technical"`
	Domain    []string `json:"domain"`
	Soft      []string `json:"soft"`
}

// ImplicitSkill is a skill inferred from evidence elsewhere in the CV.
// Evidence is always a literal excerpt of the source record.
type ImplicitSkill struct {
	Skill      string  `json:"skill"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"` // fixed per rule, in [0,1]
	Source     string  `json:"source"`
}

// TransferableSkill is a skill carried over from another experience domain.
type TransferableSkill struct {
	Skill      string `json:"skill"`
	FromDomain string `json:"from_domain"`
	Relevance  string `json:"relevance"`
	Evidence   string `json:"evidence"`
}

// SeniorityIndicators summarizes deterministic seniority signals.
type SeniorityIndicators struct {
	YearsExperience int  `json:"years_experience"`
	Leadership      bool `json:"leadership"`
	Architecture    bool `json:"architecture"`
}

// Package types provides type definitions for structured data used throughout the skill-gap analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Skill category keys used in CandidateRecord.Skills.
const (
	SkillCategoryLanguages  = "languages"
	SkillCategoryFrameworks = "frameworks"
	SkillCategoryTools      = "tools"
)

// CandidateRecord represents a structured CV extracted from raw text.
// It is built once by the extractor and read-only afterward.
type CandidateRecord struct {
	Personal   PersonalInfo        `json:"personal"`
	Experience []ExperienceEntry   `json:"experience"`
	Skills     map[string][]string `json:"skills"`
	Education  []EducationEntry    `json:"education"`
	Projects   []ProjectEntry      `json:"projects"`
}

// PersonalInfo holds the candidate name and detected contact channels.
type PersonalInfo struct {
	Name    string            `json:"name"`
	Contact map[string]string `json:"contact"` // keys: email, phone, linkedin, github
}

// ExperienceEntry represents a single position held by the candidate.
type ExperienceEntry struct {
	Company string    `json:"company"`
	Title   string    `json:"title"`
	Dates   DateRange `json:"dates"`
	Bullets []string  `json:"bullets"`
}

// DateRange is a parsed employment date range. Raw always preserves the
// original text; Parsed reports whether the year fields are trustworthy.
type DateRange struct {
	Raw       string `json:"raw"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
	Present   bool   `json:"present,omitempty"`
	Parsed    bool   `json:"parsed"`
}

// Years returns the span covered by the range, or zero when the range
// failed to parse or is inverted.
func (d DateRange) Years() int {
	if !d.Parsed || d.EndYear < d.StartYear {
		return 0
	}
	return d.EndYear - d.StartYear
}

// EducationEntry represents a degree or certification.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ProjectEntry represents a personal or portfolio project.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

// AllSkillTokens returns every normalized skill token across the record's
// skill categories, preserving category order then insertion order.
func (c *CandidateRecord) AllSkillTokens() []string {
	var tokens []string
	for _, category := range []string{SkillCategoryLanguages, SkillCategoryFrameworks, SkillCategoryTools} {
		tokens = append(tokens, c.Skills[category]...)
	}
	return tokens
}

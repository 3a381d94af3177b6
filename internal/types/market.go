//nolint:revive // types is a standard Go package name pattern
package types

// DemandLevel describes market demand for a role.
type DemandLevel string

// Demand levels, lowest to highest.
const (
	DemandLow      DemandLevel = "low"
	DemandMedium   DemandLevel = "medium"
	DemandHigh     DemandLevel = "high"
	DemandVeryHigh DemandLevel = "very-high"
)

// Display returns the human-readable form used in rendered reports.
func (d DemandLevel) Display() string {
	switch d {
	case DemandLow:
		return "Low"
	case DemandMedium:
		return "Medium"
	case DemandHigh:
		return "High"
	case DemandVeryHigh:
		return "Very High"
	default:
		return "Medium"
	}
}

// Market profile provenance values.
const (
	MarketSourceStatic   = "static"
	MarketSourceRemote   = "remote"
	MarketSourceFallback = "fallback"
)

// MarketProfile holds the requirements dataset for a target role.
// Immutable once returned by the matcher.
type MarketProfile struct {
	Role                    string      `json:"role"`
	CoreRequirements        []string    `json:"core_requirements"`
	PreferredQualifications []string    `json:"preferred_qualifications"`
	EmergingTrends          []string    `json:"emerging_trends"`
	Demand                  DemandLevel `json:"demand_level"`
	Salary                  SalaryRange `json:"salary_range"`
	GrowthAreas             []string    `json:"growth_areas"`
	TechStack               TechStack   `json:"tech_stack"`
	Source                  string      `json:"source"`
}

// SalaryRange is an annual salary band.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// TechStack lists popular technologies for a role by category.
type TechStack struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

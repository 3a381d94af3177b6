package market

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// ErrRoleNotFound reports that no static profile matches a role.
type ErrRoleNotFound struct {
	Role string
}

func (e *ErrRoleNotFound) Error() string {
	return fmt.Sprintf("no market profile for role %q", e.Role)
}

// staticProfiles is the built-in market dataset, keyed by normalized role
// name. List order inside each profile is significant: gap analysis walks
// requirements in dataset order.
var staticProfiles = map[string]types.MarketProfile{
	"ai engineer": {
		Role: "AI Engineer",
		CoreRequirements: []string{
			"Python", "Machine Learning", "Deep Learning", "LLM Integration",
			"Prompt Engineering", "Vector Databases", "API Development",
		},
		PreferredQualifications: []string{
			"MLOps", "Kubernetes", "Cloud Platforms", "RAG Systems", "Fine-tuning",
		},
		EmergingTrends: []string{
			"Agentic AI", "Multimodal Models", "Model Quantization",
		},
		Demand: types.DemandVeryHigh,
		Salary: types.SalaryRange{Min: 120000, Max: 200000, Currency: "USD"},
		GrowthAreas: []string{
			"LLM application development", "AI safety and evaluation",
		},
		TechStack: types.TechStack{
			Languages:  []string{"python", "sql"},
			Frameworks: []string{"pytorch", "tensorflow", "fastapi"},
			Tools:      []string{"docker", "kubernetes", "aws"},
		},
		Source: types.MarketSourceStatic,
	},
	"machine learning engineer": {
		Role: "Machine Learning Engineer",
		CoreRequirements: []string{
			"Python", "Machine Learning", "Model Training", "Feature Engineering",
			"ML Pipelines", "SQL",
		},
		PreferredQualifications: []string{
			"Spark", "MLOps", "Kubernetes", "Cloud Platforms", "Deep Learning",
		},
		EmergingTrends: []string{
			"Feature Stores", "Model Monitoring", "AutoML",
		},
		Demand: types.DemandVeryHigh,
		Salary: types.SalaryRange{Min: 115000, Max: 190000, Currency: "USD"},
		GrowthAreas: []string{
			"Real-time inference", "ML infrastructure",
		},
		TechStack: types.TechStack{
			Languages:  []string{"python", "sql", "scala"},
			Frameworks: []string{"scikit-learn", "pytorch", "tensorflow"},
			Tools:      []string{"spark", "kafka", "docker", "aws"},
		},
		Source: types.MarketSourceStatic,
	},
	"backend engineer": {
		Role: "Backend Engineer",
		CoreRequirements: []string{
			"API Design", "Databases", "System Design", "Testing", "SQL",
		},
		PreferredQualifications: []string{
			"Microservices", "Message Queues", "Caching", "Cloud Platforms", "Monitoring",
		},
		EmergingTrends: []string{
			"Event-driven Architecture", "Serverless", "gRPC",
		},
		Demand: types.DemandHigh,
		Salary: types.SalaryRange{Min: 100000, Max: 170000, Currency: "USD"},
		GrowthAreas: []string{
			"Distributed systems", "Platform engineering",
		},
		TechStack: types.TechStack{
			Languages:  []string{"go", "java", "python", "sql"},
			Frameworks: []string{"spring", "django", "express"},
			Tools:      []string{"postgres", "redis", "kafka", "docker"},
		},
		Source: types.MarketSourceStatic,
	},
	"frontend engineer": {
		Role: "Frontend Engineer",
		CoreRequirements: []string{
			"JavaScript", "TypeScript", "React", "CSS", "Accessibility",
		},
		PreferredQualifications: []string{
			"Next.js", "State Management", "Testing", "Performance Optimization",
		},
		EmergingTrends: []string{
			"Server Components", "Edge Rendering", "WebAssembly",
		},
		Demand: types.DemandHigh,
		Salary: types.SalaryRange{Min: 95000, Max: 160000, Currency: "USD"},
		GrowthAreas: []string{
			"Design systems", "Web performance",
		},
		TechStack: types.TechStack{
			Languages:  []string{"javascript", "typescript"},
			Frameworks: []string{"react", "vue", "angular"},
			Tools:      []string{"git", "docker"},
		},
		Source: types.MarketSourceStatic,
	},
	"full stack engineer": {
		Role: "Full Stack Engineer",
		CoreRequirements: []string{
			"JavaScript", "API Development", "Databases", "React", "Testing",
		},
		PreferredQualifications: []string{
			"TypeScript", "Cloud Platforms", "CI/CD", "System Design",
		},
		EmergingTrends: []string{
			"Full-stack Frameworks", "Edge Functions",
		},
		Demand: types.DemandHigh,
		Salary: types.SalaryRange{Min: 100000, Max: 165000, Currency: "USD"},
		GrowthAreas: []string{
			"Product engineering", "Rapid prototyping",
		},
		TechStack: types.TechStack{
			Languages:  []string{"javascript", "typescript", "python"},
			Frameworks: []string{"react", "nodejs", "django"},
			Tools:      []string{"postgres", "docker", "aws"},
		},
		Source: types.MarketSourceStatic,
	},
	"devops engineer": {
		Role: "DevOps Engineer",
		CoreRequirements: []string{
			"CI/CD", "Infrastructure as Code", "Containers", "Monitoring",
			"Cloud Platforms", "Scripting",
		},
		PreferredQualifications: []string{
			"Kubernetes", "Terraform", "Security", "Cost Optimization", "SRE Practices",
		},
		EmergingTrends: []string{
			"Platform Engineering", "GitOps", "FinOps",
		},
		Demand: types.DemandVeryHigh,
		Salary: types.SalaryRange{Min: 110000, Max: 180000, Currency: "USD"},
		GrowthAreas: []string{
			"Internal developer platforms", "Observability",
		},
		TechStack: types.TechStack{
			Languages:  []string{"python", "go"},
			Frameworks: []string{},
			Tools:      []string{"docker", "kubernetes", "terraform", "jenkins", "ansible", "aws"},
		},
		Source: types.MarketSourceStatic,
	},
	"data engineer": {
		Role: "Data Engineer",
		CoreRequirements: []string{
			"SQL", "Python", "Data Pipelines", "ETL", "Data Modeling",
		},
		PreferredQualifications: []string{
			"Spark", "Airflow", "Streaming", "Cloud Platforms", "Data Warehousing",
		},
		EmergingTrends: []string{
			"Data Contracts", "Lakehouse Architecture", "Real-time Analytics",
		},
		Demand: types.DemandVeryHigh,
		Salary: types.SalaryRange{Min: 105000, Max: 175000, Currency: "USD"},
		GrowthAreas: []string{
			"Streaming platforms", "Data quality tooling",
		},
		TechStack: types.TechStack{
			Languages:  []string{"python", "sql", "scala"},
			Frameworks: []string{"pandas"},
			Tools:      []string{"spark", "kafka", "postgres", "aws"},
		},
		Source: types.MarketSourceStatic,
	},
	"data scientist": {
		Role: "Data Scientist",
		CoreRequirements: []string{
			"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization",
		},
		PreferredQualifications: []string{
			"Deep Learning", "Experiment Design", "Big Data", "Cloud Platforms",
		},
		EmergingTrends: []string{
			"Causal Inference", "LLM-assisted Analysis",
		},
		Demand: types.DemandHigh,
		Salary: types.SalaryRange{Min: 100000, Max: 170000, Currency: "USD"},
		GrowthAreas: []string{
			"Decision science", "Applied ML",
		},
		TechStack: types.TechStack{
			Languages:  []string{"python", "r", "sql"},
			Frameworks: []string{"pandas", "scikit-learn", "numpy"},
			Tools:      []string{"tableau", "spark"},
		},
		Source: types.MarketSourceStatic,
	},
}

// roleMappings maps common role spellings and abbreviations to dataset keys.
var roleMappings = map[string]string{
	"ml engineer":                      "machine learning engineer",
	"mle":                              "machine learning engineer",
	"ai/ml engineer":                   "ai engineer",
	"artificial intelligence engineer": "ai engineer",
	"llm engineer":                     "ai engineer",
	"backend developer":                "backend engineer",
	"back-end engineer":                "backend engineer",
	"back end engineer":                "backend engineer",
	"server-side engineer":             "backend engineer",
	"frontend developer":               "frontend engineer",
	"front-end engineer":               "frontend engineer",
	"front end engineer":               "frontend engineer",
	"ui engineer":                      "frontend engineer",
	"full-stack engineer":              "full stack engineer",
	"fullstack engineer":               "full stack engineer",
	"full stack developer":             "full stack engineer",
	"site reliability engineer":        "devops engineer",
	"sre":                              "devops engineer",
	"platform engineer":                "devops engineer",
	"infrastructure engineer":          "devops engineer",
	"big data engineer":                "data engineer",
	"analytics engineer":               "data engineer",
}

var roleSpaceRe = regexp.MustCompile(`\s+`)

// NormalizeRole canonicalizes a role name for dataset lookup.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	r = roleSpaceRe.ReplaceAllString(r, " ")
	if mapped, ok := roleMappings[r]; ok {
		return mapped
	}
	return r
}

// StaticLookup resolves a role against the built-in dataset. Resolution
// order: exact normalized match, then substring match in either direction.
// Substring candidates are checked in sorted key order so ambiguous roles
// resolve the same way on every run.
func StaticLookup(role string) (*types.MarketProfile, error) {
	normalized := NormalizeRole(role)

	if profile, ok := staticProfiles[normalized]; ok {
		p := profile
		return &p, nil
	}

	for _, key := range staticKeysSorted {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			p := staticProfiles[key]
			return &p, nil
		}
	}

	return nil, &ErrRoleNotFound{Role: role}
}

var staticKeysSorted = func() []string {
	keys := make([]string, 0, len(staticProfiles))
	for k := range staticProfiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// Roles lists the built-in dataset's role names, sorted.
func Roles() []string {
	roles := make([]string, 0, len(staticKeysSorted))
	for _, key := range staticKeysSorted {
		roles = append(roles, staticProfiles[key].Role)
	}
	return roles
}

// FallbackProfile builds a generic software engineering profile for roles
// the dataset does not cover. Role keywords tilt the requirements toward
// the closest discipline so the report stays useful.
func FallbackProfile(role string) *types.MarketProfile {
	profile := &types.MarketProfile{
		Role: role,
		CoreRequirements: []string{
			"Programming Fundamentals", "Version Control", "Testing",
			"Problem Solving", "System Design",
		},
		PreferredQualifications: []string{
			"Cloud Platforms", "CI/CD", "Agile Practices",
		},
		EmergingTrends: []string{
			"AI-assisted Development",
		},
		Demand: types.DemandMedium,
		Salary: types.SalaryRange{Min: 80000, Max: 140000, Currency: "USD"},
		GrowthAreas: []string{
			"Cross-functional collaboration",
		},
		TechStack: types.TechStack{
			Languages: []string{"python", "javascript"},
			Tools:     []string{"git", "docker"},
		},
		Source: types.MarketSourceFallback,
	}

	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "data"):
		profile.CoreRequirements = append(profile.CoreRequirements, "SQL", "Data Analysis")
	case strings.Contains(lower, "security"):
		profile.CoreRequirements = append(profile.CoreRequirements, "Security Fundamentals", "Networking")
	case strings.Contains(lower, "mobile"):
		profile.CoreRequirements = append(profile.CoreRequirements, "Mobile Platforms", "UI Development")
	case strings.Contains(lower, "manager") || strings.Contains(lower, "lead"):
		profile.CoreRequirements = append(profile.CoreRequirements, "People Management", "Technical Communication")
	}

	return profile
}

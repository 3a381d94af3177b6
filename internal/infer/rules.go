package infer

// ImplicitRule maps a trigger technology or phrase to the skills it
// implies, with a fixed confidence per rule. The table is ordered so
// inference output is deterministic and the rule set stays auditable.
type ImplicitRule struct {
	Trigger    string
	Implied    []string
	Confidence float64
}

var implicitRules = []ImplicitRule{
	// DevOps and infrastructure
	{"kubernetes", []string{"container orchestration", "devops", "cloud architecture", "microservices"}, 0.9},
	{"docker", []string{"containerization", "devops", "deployment automation"}, 0.8},
	{"terraform", []string{"infrastructure as code", "cloud architecture", "automation"}, 0.9},
	{"jenkins", []string{"ci/cd", "build automation", "devops pipeline"}, 0.8},
	{"ansible", []string{"configuration management", "automation"}, 0.8},

	// AI/ML
	{"tensorflow", []string{"deep learning", "neural networks", "model training"}, 0.9},
	{"pytorch", []string{"deep learning", "research", "model experimentation"}, 0.9},
	{"scikit-learn", []string{"machine learning", "data analysis", "statistical modeling"}, 0.8},
	{"llm", []string{"prompt engineering", "model evaluation", "nlp"}, 0.8},

	// Cloud platforms
	{"aws", []string{"cloud computing", "scalable architecture", "cloud security"}, 0.8},
	{"azure", []string{"cloud computing", "enterprise solutions"}, 0.8},
	{"gcp", []string{"cloud computing", "data analytics"}, 0.8},

	// Data engineering
	{"spark", []string{"big data processing", "distributed computing", "data engineering"}, 0.9},
	{"kafka", []string{"stream processing", "event-driven architecture", "real-time data"}, 0.8},
	{"airflow", []string{"workflow orchestration", "data pipelines", "automation"}, 0.8},

	// Web development
	{"react", []string{"frontend development", "component architecture", "javascript ecosystem"}, 0.8},
	{"microservices", []string{"distributed systems", "api design", "system architecture"}, 0.9},
}

// projectSignalRule flags advanced capabilities from project descriptions.
type projectSignalRule struct {
	Keywords   []string
	Skill      string
	Confidence float64
}

var projectSignalRules = []projectSignalRule{
	{[]string{"scale", "million", "thousand", "enterprise"}, "scalable system design", 0.7},
	{[]string{"optimize", "performance", "speed", "efficiency"}, "performance optimization", 0.8},
	{[]string{"research", "novel", "innovative", "experiment"}, "research and development", 0.6},
}

// TransferableRule maps an experience keyword to skills that carry over
// from another domain.
type TransferableRule struct {
	Keyword string
	Skills  []string
	Domain  string
}

var transferableRules = []TransferableRule{
	{"led a team", []string{"leadership", "project management"}, "leadership"},
	{"team lead", []string{"project management", "mentoring", "stakeholder communication"}, "leadership"},
	{"mentored", []string{"mentoring", "coaching"}, "leadership"},
	{"phd", []string{"analytical thinking", "technical writing", "research methodology"}, "academic research"},
	{"startup", []string{"adaptability", "rapid prototyping", "cross-functional collaboration"}, "entrepreneurship"},
	{"consultant", []string{"client communication", "problem diagnosis", "solution design"}, "consulting"},
	{"architect", []string{"system design", "technical strategy", "stakeholder alignment"}, "technical architecture"},
}

// relevanceLabels assesses transferable skills against technical roles.
var relevanceLabels = map[string]string{
	"analytical thinking":       "High - Essential for problem-solving in technical roles",
	"technical writing":         "High - Important for documentation and communication",
	"system design":             "High - Critical for architecture and senior engineering roles",
	"leadership":                "High - Valued across senior and lead positions",
	"project management":        "Medium - Valuable for senior and lead positions",
	"mentoring":                 "Medium - Important for senior and team lead roles",
	"stakeholder communication": "Medium - Crucial for client-facing and senior roles",
	"adaptability":              "Medium - Valuable in fast-paced environments",
}

const defaultRelevance = "Medium - Applicable to collaborative technical work"

// softSkillRule maps bullet verbs to a named soft skill.
type softSkillRule struct {
	Keywords []string
	Skill    string
}

var softSkillRules = []softSkillRule{
	{[]string{"led", "managed", "coordinated", "supervised"}, "leadership"},
	{[]string{"presented", "communicated", "collaborated", "stakeholder"}, "communication"},
	{[]string{"solved", "optimized", "improved", "debugged"}, "problem solving"},
	{[]string{"planned", "delivered", "milestone", "deadline"}, "project management"},
}

// domainTitleRule maps job-title keywords to domain skills.
type domainTitleRule struct {
	Keywords []string
	Skills   []string
}

var domainTitleRules = []domainTitleRule{
	{[]string{"ai", "ml", "machine learning", "data scientist"}, []string{"machine learning", "data science"}},
	{[]string{"backend", "server", "api"}, []string{"backend development", "api development"}},
	{[]string{"frontend", "ui", "ux"}, []string{"frontend development", "user interface design"}},
	{[]string{"devops", "sre", "infrastructure"}, []string{"devops", "infrastructure management", "site reliability"}},
}

var domainCompanyRules = []domainTitleRule{
	{[]string{"bank", "fintech", "financial", "trading"}, []string{"financial technology", "regulatory compliance"}},
}

var domainEducationRules = []domainTitleRule{
	{[]string{"computer science"}, []string{"computer science fundamentals", "algorithms"}},
	{[]string{"engineering"}, []string{"engineering principles", "systematic problem solving"}},
}

// Seniority keyword lists.
var (
	leadershipKeywords = []string{
		"lead", "senior", "principal", "architect", "manager", "director",
		"team lead", "tech lead", "engineering manager", "head of",
	}
	architectureKeywords = []string{
		"architecture", "system design", "technical design",
		"scalability", "performance optimization", "distributed systems",
	}
)

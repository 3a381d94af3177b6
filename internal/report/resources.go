package report

import (
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// learningResources maps a normalized skill name to curated study
// materials, ordered foundational first.
var learningResources = map[string][]string{
	"python": {
		"Python Crash Course (book)",
		"Real Python tutorials (realpython.com)",
	},
	"machine learning": {
		"Andrew Ng's Machine Learning Specialization (Coursera)",
		"Hands-On Machine Learning with Scikit-Learn, Keras & TensorFlow (book)",
	},
	"deep learning": {
		"Deep Learning Specialization (Coursera)",
		"fast.ai Practical Deep Learning course",
	},
	"docker": {
		"Docker official Get Started guide (docs.docker.com)",
		"Docker Deep Dive (book)",
	},
	"kubernetes": {
		"Kubernetes official tutorials (kubernetes.io)",
		"Certified Kubernetes Administrator (CKA) curriculum",
	},
	"containers": {
		"Docker official Get Started guide (docs.docker.com)",
		"Kubernetes official tutorials (kubernetes.io)",
	},
	"terraform": {
		"HashiCorp Terraform Associate tutorials (learn.hashicorp.com)",
		"Terraform: Up & Running (book)",
	},
	"infrastructure as code": {
		"HashiCorp Terraform Associate tutorials (learn.hashicorp.com)",
		"Infrastructure as Code by Kief Morris (book)",
	},
	"monitoring": {
		"Prometheus official documentation (prometheus.io)",
		"Google SRE Book, Monitoring Distributed Systems chapter",
	},
	"ci/cd": {
		"Continuous Delivery by Humble & Farley (book)",
		"GitHub Actions documentation (docs.github.com)",
	},
	"cloud platforms": {
		"AWS Cloud Practitioner Essentials (aws.training)",
		"Google Cloud Skills Boost fundamentals path",
	},
	"react": {
		"React official documentation (react.dev)",
		"Epic React by Kent C. Dodds",
	},
	"sql": {
		"SQLBolt interactive lessons (sqlbolt.com)",
		"Use The Index, Luke (use-the-index-luke.com)",
	},
	"system design": {
		"Designing Data-Intensive Applications (book)",
		"System Design Primer (github.com/donnemartin/system-design-primer)",
	},
	"api design": {
		"RESTful Web APIs (book)",
		"API design guidance from the Google API Improvement Proposals",
	},
	"api development": {
		"RESTful Web APIs (book)",
		"FastAPI official tutorial (fastapi.tiangolo.com)",
	},
	"testing": {
		"Test-Driven Development by Example (book)",
	},
	"spark": {
		"Spark: The Definitive Guide (book)",
	},
	"kafka": {
		"Kafka: The Definitive Guide (book)",
	},
	"data pipelines": {
		"Fundamentals of Data Engineering (book)",
		"Apache Airflow official tutorials",
	},
	"llm integration": {
		"DeepLearning.AI short courses on LLM application development",
	},
	"prompt engineering": {
		"DeepLearning.AI Prompt Engineering for Developers",
	},
}

var genericResources = []string{
	"The Pragmatic Programmer (book)",
	"roadmap.sh learning paths for the target role",
}

// maxResourceEntries bounds the rendered resource list.
const maxResourceEntries = 10

// ResourceEntry pairs a gap skill with its study materials.
type ResourceEntry struct {
	Skill     string
	Materials []string
}

// RecommendResources selects study materials for the most pressing gaps,
// critical first then important, preserving gap order. Skills without
// curated materials fall back to a generic list, so the section is never
// empty.
func RecommendResources(gaps []types.GapEntry) []ResourceEntry {
	var entries []ResourceEntry
	seen := make(map[string]bool)

	pick := func(priority types.GapPriority) {
		for _, gap := range gaps {
			if gap.Priority != priority || len(entries) >= maxResourceEntries {
				continue
			}
			key := strings.ToLower(gap.Skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			materials := learningResources[key]
			if len(materials) == 0 {
				materials = genericResources
			}
			entries = append(entries, ResourceEntry{Skill: gap.Skill, Materials: materials})
		}
	}
	pick(types.PriorityCritical)
	pick(types.PriorityImportant)

	if len(entries) == 0 {
		entries = append(entries, ResourceEntry{Skill: "General Growth", Materials: genericResources})
	}
	return entries
}

// Package report computes skill gaps and renders the final Markdown
// document. Gap computation is purely deterministic: requirements are
// walked in dataset order and every tie-break is fixed, so identical
// inputs always render identical reports.
package report

import (
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// requirementAliases maps a normalized requirement name to the candidate
// skill tokens that satisfy it. A requirement always also matches its own
// normalized name; aliases cover the common requirement-to-technology
// indirections ("Containers" is evidenced by docker).
var requirementAliases = map[string][]string{
	"containers":             {"docker", "containerization", "kubernetes"},
	"ci/cd":                  {"jenkins", "ci/cd", "build automation"},
	"infrastructure as code": {"terraform", "infrastructure as code"},
	"monitoring":             {"monitoring", "observability"},
	"cloud platforms":        {"aws", "azure", "gcp", "cloud computing"},
	"scripting":              {"python", "bash", "shell"},
	"machine learning":       {"machine learning", "scikit-learn"},
	"deep learning":          {"deep learning", "tensorflow", "pytorch"},
	"model training":         {"model training", "tensorflow", "pytorch"},
	"api development":        {"api development", "api design", "fastapi", "express"},
	"api design":             {"api design", "api development", "fastapi"},
	"databases":              {"sql", "postgres", "mongo", "redis"},
	"data pipelines":         {"data pipelines", "airflow", "spark"},
	"streaming":              {"stream processing", "kafka"},
	"message queues":         {"kafka", "redis"},
	"big data":               {"big data processing", "spark", "hadoop"},
	"data visualization":     {"tableau", "powerbi", "data visualization"},
	"version control":        {"git"},
	"microservices":          {"microservices", "distributed systems"},
	"system design":          {"system design", "system architecture"},
	"caching":                {"redis", "caching"},
	"spark":                  {"spark"},
	"airflow":                {"airflow"},
	"kubernetes":             {"kubernetes"},
	"terraform":              {"terraform"},
	"react":                  {"react"},
	"etl":                    {"etl", "data pipelines", "airflow"},
}

// BuildGaps produces the ordered gap list for a market profile. Core
// requirements come first in dataset order, then preferred qualifications,
// with duplicates dropped on first occurrence.
func BuildGaps(rec *types.CandidateRecord, analysis *types.SkillAnalysis, profile *types.MarketProfile) []types.GapEntry {
	var gaps []types.GapEntry
	seen := make(map[string]bool)

	add := func(requirement string, fromCore bool) {
		key := strings.ToLower(strings.TrimSpace(requirement))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true

		level, evidence := currentLevel(key, rec, analysis)
		gap := gapSize(level)
		gaps = append(gaps, types.GapEntry{
			Skill:        requirement,
			CurrentLevel: level,
			Gap:          gap,
			Priority:     priority(fromCore, gap),
			Evidence:     evidence,
			FromCore:     fromCore,
		})
	}

	for _, req := range profile.CoreRequirements {
		add(req, true)
	}
	for _, req := range profile.PreferredQualifications {
		add(req, false)
	}

	return gaps
}

// currentLevel determines the candidate's level for one requirement.
// Explicit skills map to basic, escalated to intermediate when the skill
// also appears in a project tech stack. Implicit, domain, soft, and
// transferable matches map to basic. No match means none.
func currentLevel(requirement string, rec *types.CandidateRecord, analysis *types.SkillAnalysis) (types.SkillLevel, string) {
	candidates := append([]string{requirement}, requirementAliases[requirement]...)

	for _, candidate := range candidates {
		if !hasString(analysis.Explicit.Technical, candidate) {
			continue
		}
		if inProjectStack(rec, candidate) {
			return types.LevelIntermediate, candidate
		}
		return types.LevelBasic, candidate
	}

	for _, candidate := range candidates {
		for _, imp := range analysis.Implicit {
			if imp.Skill == candidate {
				return types.LevelBasic, imp.Evidence
			}
		}
		if hasString(analysis.Explicit.Domain, candidate) || hasString(analysis.Explicit.Soft, candidate) {
			return types.LevelBasic, candidate
		}
		for _, tr := range analysis.Transferable {
			if tr.Skill == candidate {
				return types.LevelBasic, tr.Evidence
			}
		}
	}

	return types.LevelNone, ""
}

func gapSize(level types.SkillLevel) types.GapSize {
	switch level {
	case types.LevelNone:
		return types.GapHigh
	case types.LevelBasic:
		return types.GapMedium
	default:
		return types.GapLow
	}
}

// priority ranks a gap. Core requirements with a high gap are critical;
// core with medium, or preferred with high, are important; the rest are
// nice-to-have. A preferred qualification never outranks a core one.
func priority(fromCore bool, gap types.GapSize) types.GapPriority {
	switch {
	case fromCore && gap == types.GapHigh:
		return types.PriorityCritical
	case fromCore && gap == types.GapMedium:
		return types.PriorityImportant
	case !fromCore && gap == types.GapHigh:
		return types.PriorityImportant
	default:
		return types.PriorityNiceToHave
	}
}

func inProjectStack(rec *types.CandidateRecord, token string) bool {
	for _, project := range rec.Projects {
		if hasString(project.TechStack, token) {
			return true
		}
	}
	return false
}

func hasString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

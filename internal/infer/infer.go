// Package infer derives explicit, implicit, and transferable skills from a
// candidate record using a fixed rule table. All inference is deterministic:
// the same record always yields the same analysis, and every inferred skill
// cites a literal excerpt of the record as evidence.
package infer

import (
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// maxEvidenceLen caps evidence excerpts. Truncation keeps a prefix so the
// excerpt remains a literal substring of the source text.
const maxEvidenceLen = 140

// Analyze derives a SkillAnalysis from a candidate record. It never fails;
// a sparse record simply yields a sparse analysis.
func Analyze(rec *types.CandidateRecord) *types.SkillAnalysis {
	analysis := &types.SkillAnalysis{
		Explicit: types.ExplicitSkills{
			Technical: explicitTechnical(rec),
			Domain:    domainSkills(rec),
			Soft:      softSkills(rec),
		},
		Seniority: seniority(rec),
	}
	analysis.Implicit = implicitSkills(rec, analysis.Explicit.Technical)
	analysis.Transferable = transferableSkills(rec)
	return analysis
}

// explicitTechnical merges skills-section tokens with project tech stacks,
// preserving first-seen order.
func explicitTechnical(rec *types.CandidateRecord) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(token string) {
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		out = append(out, token)
	}
	for _, token := range rec.AllSkillTokens() {
		add(token)
	}
	for _, project := range rec.Projects {
		for _, token := range project.TechStack {
			add(token)
		}
	}
	return out
}

func domainSkills(rec *types.CandidateRecord) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(skills []string) {
		for _, s := range skills {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	for _, rule := range domainTitleRules {
		for _, exp := range rec.Experience {
			if containsAny(strings.ToLower(exp.Title), rule.Keywords) {
				add(rule.Skills)
				break
			}
		}
	}
	for _, rule := range domainCompanyRules {
		for _, exp := range rec.Experience {
			if containsAny(strings.ToLower(exp.Company), rule.Keywords) {
				add(rule.Skills)
				break
			}
		}
	}
	for _, rule := range domainEducationRules {
		for _, edu := range rec.Education {
			if containsAny(strings.ToLower(edu.Degree+" "+edu.Institution), rule.Keywords) {
				add(rule.Skills)
				break
			}
		}
	}
	return out
}

func softSkills(rec *types.CandidateRecord) []string {
	var texts []string
	for _, exp := range rec.Experience {
		texts = append(texts, exp.Bullets...)
	}
	for _, project := range rec.Projects {
		texts = append(texts, project.Description)
	}

	var out []string
	for _, rule := range softSkillRules {
		for _, text := range texts {
			if containsAny(strings.ToLower(text), rule.Keywords) {
				out = append(out, rule.Skill)
				break
			}
		}
	}
	return out
}

// implicitSkills applies the rule table to the candidate's technologies in
// explicit order, then scans project descriptions for capability signals.
// Each implied skill is emitted once, keeping the first (strongest-ordered)
// rule that produced it.
func implicitSkills(rec *types.CandidateRecord, technical []string) []types.ImplicitSkill {
	var out []types.ImplicitSkill
	seen := make(map[string]bool)

	for _, rule := range implicitRules {
		if !hasToken(technical, rule.Trigger) {
			continue
		}
		evidence, source := findEvidence(rec, rule.Trigger)
		for _, implied := range rule.Implied {
			if seen[implied] {
				continue
			}
			seen[implied] = true
			out = append(out, types.ImplicitSkill{
				Skill:      implied,
				Evidence:   evidence,
				Confidence: rule.Confidence,
				Source:     source,
			})
		}
	}

	for _, rule := range projectSignalRules {
		for _, project := range rec.Projects {
			if !containsAny(strings.ToLower(project.Description), rule.Keywords) {
				continue
			}
			if seen[rule.Skill] {
				break
			}
			seen[rule.Skill] = true
			out = append(out, types.ImplicitSkill{
				Skill:      rule.Skill,
				Evidence:   truncate(project.Description),
				Confidence: rule.Confidence,
				Source:     types.EvidenceSourceProjects,
			})
			break
		}
	}

	return out
}

// findEvidence locates a literal excerpt mentioning the trigger. Experience
// bullets are preferred, then project text; the skills-section token itself
// is the fallback and is always present when the trigger fired.
func findEvidence(rec *types.CandidateRecord, trigger string) (evidence, source string) {
	for _, exp := range rec.Experience {
		for _, bullet := range exp.Bullets {
			if strings.Contains(strings.ToLower(bullet), trigger) {
				return truncate(bullet), types.EvidenceSourceExperience
			}
		}
	}
	for _, project := range rec.Projects {
		if strings.Contains(strings.ToLower(project.Name+" "+project.Description), trigger) {
			return truncate(project.Description), types.EvidenceSourceProjects
		}
	}
	return trigger, types.EvidenceSourceSkills
}

// transferableSkills scans bullets, titles, and degrees for cross-domain
// keywords. The first match per rule supplies the evidence excerpt.
func transferableSkills(rec *types.CandidateRecord) []types.TransferableSkill {
	var texts []string
	for _, exp := range rec.Experience {
		texts = append(texts, exp.Title)
		texts = append(texts, exp.Bullets...)
	}
	for _, edu := range rec.Education {
		texts = append(texts, edu.Degree)
	}

	var out []types.TransferableSkill
	seen := make(map[string]bool)
	for _, rule := range transferableRules {
		match := ""
		for _, text := range texts {
			if strings.Contains(strings.ToLower(text), rule.Keyword) {
				match = text
				break
			}
		}
		if match == "" {
			continue
		}
		for _, skill := range rule.Skills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			relevance := relevanceLabels[skill]
			if relevance == "" {
				relevance = defaultRelevance
			}
			out = append(out, types.TransferableSkill{
				Skill:      skill,
				FromDomain: rule.Domain,
				Relevance:  relevance,
				Evidence:   truncate(match),
			})
		}
	}
	return out
}

// seniority sums parsed employment spans and scans titles and bullets for
// leadership and architecture signals. Unparsed date ranges contribute zero
// years rather than failing the analysis.
func seniority(rec *types.CandidateRecord) types.SeniorityIndicators {
	var s types.SeniorityIndicators
	for _, exp := range rec.Experience {
		s.YearsExperience += exp.Dates.Years()

		lower := strings.ToLower(exp.Title)
		if containsAny(lower, leadershipKeywords) {
			s.Leadership = true
		}
		for _, bullet := range exp.Bullets {
			bl := strings.ToLower(bullet)
			if containsAny(bl, leadershipKeywords) {
				s.Leadership = true
			}
			if containsAny(bl, architectureKeywords) {
				s.Architecture = true
			}
		}
	}
	return s
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

func truncate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxEvidenceLen {
		return text
	}
	return text[:maxEvidenceLen]
}

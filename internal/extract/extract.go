// Package extract turns raw CV text into a structured CandidateRecord.
// It never fails: absence of matches yields empty collections, and reduced
// extraction quality is reported through warnings, not errors.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// targetSectionCount is the number of CV sections the extractor looks for:
// personal, experience, skills, education, projects.
const targetSectionCount = 5

// minSectionCoverage is the detection threshold below which the extractor
// reports low confidence.
const minSectionCoverage = 3

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	docTitleRe = regexp.MustCompile(`(?i)^(curriculum|vitae|resume|cv)\b`)

	degreeTokenRe = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?(?: of [\w ]+?)?|master(?:'s)?(?: of [\w ]+?)?|ph\.?d\.?|doctorate|diploma|certificate|b\.?sc?\.?|m\.?sc?\.?|m\.?eng\.?)\b`)
	institutionRe = regexp.MustCompile(`(?i)(university|college|institute|school)\s+of\s+\w+|\w+\s+(university|college|institute|polytechnic)`)
)

// Parse extracts a CandidateRecord from raw CV text. The returned warnings
// describe non-fatal quality conditions such as low section coverage.
func Parse(raw string) (*types.CandidateRecord, []string) {
	var warnings []string

	lines := strings.Split(raw, "\n")
	sections, preamble := splitSections(lines)
	currentYear := time.Now().Year()

	rec := &types.CandidateRecord{
		Personal:   extractPersonal(preamble, raw),
		Experience: extractExperience(sections[sectionExperience], currentYear),
		Skills:     extractSkills(sections[sectionSkills], raw),
		Education:  extractEducation(sections[sectionEducation]),
		Projects:   extractProjects(sections[sectionProjects]),
	}

	if coverage := sectionCoverage(rec); coverage < minSectionCoverage {
		warnings = append(warnings, fmt.Sprintf(
			"low section coverage: detected %d of %d target sections", coverage, targetSectionCount))
	}

	return rec, warnings
}

// extractPersonal pulls the candidate name from the first substantial
// preamble line and contact channels from anywhere in the document.
func extractPersonal(preamble []string, fullText string) types.PersonalInfo {
	personal := types.PersonalInfo{Contact: map[string]string{}}

	checked := 0
	for _, line := range preamble {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		checked++
		if checked > 5 {
			break
		}
		if docTitleRe.MatchString(trimmed) || len(trimmed) <= 2 || strings.Contains(trimmed, "@") {
			continue
		}
		personal.Name = trimmed
		break
	}

	if m := emailRe.FindString(fullText); m != "" {
		personal.Contact["email"] = m
	}
	if m := phoneRe.FindString(fullText); m != "" {
		personal.Contact["phone"] = strings.TrimSpace(m)
	}
	if m := linkedinRe.FindString(fullText); m != "" {
		personal.Contact["linkedin"] = m
	}
	if m := githubRe.FindString(fullText); m != "" {
		personal.Contact["github"] = m
	}

	return personal
}

// extractExperience groups contiguous section lines into entries. A line
// carrying a date range starts a new entry; lines that fit no entry header
// are demoted to raw bullets under a single synthetic entry.
func extractExperience(lines []string, currentYear int) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var block []string
	var orphans []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		entry, ok := parseExperienceBlock(block, currentYear)
		if ok {
			entries = append(entries, entry)
		} else {
			orphans = append(orphans, block...)
		}
		block = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if containsDateRange(trimmed) && len(block) > 0 {
			flush()
		}
		block = append(block, trimmed)
	}
	flush()

	// No parseable structure: everything becomes one synthetic entry with a
	// raw bullet list so downstream stages still see the content.
	if len(orphans) > 0 {
		bullets := make([]string, 0, len(orphans))
		for _, line := range orphans {
			bullets = append(bullets, stripBullet(line))
		}
		entries = append(entries, types.ExperienceEntry{Bullets: bullets})
	}

	return entries
}

// parseExperienceBlock parses one grouped block into an entry. The block is
// usable when its header yields a company, a title, or a parsed date range.
func parseExperienceBlock(block []string, currentYear int) (types.ExperienceEntry, bool) {
	entry := types.ExperienceEntry{}

	header := block[0]
	entry.Dates = ParseDateRange(header, currentYear)
	headerText := header
	if entry.Dates.Parsed {
		headerText = stripDateRange(header)
	}

	lower := strings.ToLower(headerText)
	switch {
	case strings.Contains(lower, " at "):
		idx := strings.Index(lower, " at ")
		entry.Title = strings.TrimSpace(headerText[:idx])
		entry.Company = strings.TrimSpace(headerText[idx+len(" at "):])
	case strings.Contains(headerText, ","):
		parts := strings.SplitN(headerText, ",", 2)
		entry.Company = strings.TrimSpace(parts[0])
		entry.Title = strings.TrimSpace(parts[1])
	default:
		// A bare line only reads as a company when a date range anchors
		// the block; otherwise it is indistinguishable from a bullet.
		if entry.Dates.Parsed {
			entry.Company = strings.TrimSpace(headerText)
		}
	}

	for _, line := range block[1:] {
		if looksLikeYearOnly(line) {
			continue
		}
		entry.Bullets = append(entry.Bullets, stripBullet(line))
	}

	ok := entry.Company != "" || entry.Title != "" || entry.Dates.Parsed
	return entry, ok
}

// stripBullet removes a leading bullet or numbering marker.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), ""))
}

// extractSkills collects normalized tokens from the skills section, then
// supplements each category with known technologies mentioned anywhere in
// the document.
func extractSkills(sectionLines []string, fullText string) map[string][]string {
	skills := map[string][]string{
		types.SkillCategoryLanguages:  {},
		types.SkillCategoryFrameworks: {},
		types.SkillCategoryTools:      {},
	}
	seen := make(map[string]bool)

	add := func(token string) {
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		category := categoryOf(token)
		skills[category] = append(skills[category], token)
	}

	for _, line := range sectionLines {
		for _, token := range SplitSkillTokens(line) {
			add(token)
		}
	}
	for _, token := range ScanKnownTech(fullText) {
		add(token)
	}

	return skills
}

// extractEducation scans education section lines for degree tokens and
// attaches the year and institution found on or near the same line.
func extractEducation(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry
	seen := make(map[string]bool)

	for i, line := range lines {
		m := degreeTokenRe.FindString(line)
		if m == "" {
			continue
		}

		entry := types.EducationEntry{Degree: strings.TrimSpace(m)}
		// Year and institution may sit on the degree line or an adjacent one.
		context := line
		if i > 0 {
			context = lines[i-1] + "\n" + context
		}
		if i+1 < len(lines) {
			context = context + "\n" + lines[i+1]
		}
		entry.Year = bareYearRe.FindString(context)
		entry.Institution = strings.TrimSpace(institutionRe.FindString(context))

		key := strings.ToLower(entry.Degree + "|" + entry.Year)
		if !seen[key] {
			seen[key] = true
			entries = append(entries, entry)
		}
	}

	return entries
}

var projectSplitRe = regexp.MustCompile(`^[•\-*·]\s+|^\d+\.\s+`)

// extractProjects splits the projects section into blocks and detects each
// block's tech stack from the known vocabulary.
func extractProjects(lines []string) []types.ProjectEntry {
	var projects []types.ProjectEntry
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		name := strings.TrimSpace(block[0])
		desc := name
		if len(block) > 1 {
			desc = strings.Join(block[1:], " ")
		}
		if len(name) >= 3 {
			projects = append(projects, types.ProjectEntry{
				Name:        name,
				Description: desc,
				TechStack:   ScanKnownTech(name + " " + desc),
			})
		}
		block = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if projectSplitRe.MatchString(trimmed) {
			flush()
			trimmed = stripBullet(trimmed)
		}
		block = append(block, trimmed)
	}
	flush()

	return projects
}

// sectionCoverage counts how many of the five target sections produced
// usable content.
func sectionCoverage(rec *types.CandidateRecord) int {
	coverage := 0
	if rec.Personal.Name != "" {
		coverage++
	}
	for _, exp := range rec.Experience {
		if exp.Company != "" || exp.Title != "" {
			coverage++
			break
		}
	}
	if len(rec.AllSkillTokens()) > 0 {
		coverage++
	}
	if len(rec.Education) > 0 {
		coverage++
	}
	if len(rec.Projects) > 0 {
		coverage++
	}
	return coverage
}

package extract

import "strings"

// Target section identifiers.
const (
	sectionExperience = "experience"
	sectionSkills     = "skills"
	sectionEducation  = "education"
	sectionProjects   = "projects"
)

// sectionSynonyms maps each target section to the header spellings that
// open it. Matching is case-insensitive against line-start tokens.
var sectionSynonyms = map[string][]string{
	sectionExperience: {
		"work experience", "professional experience", "employment history",
		"career history", "employment", "experience",
	},
	sectionSkills: {
		"technical skills", "core competencies", "competencies",
		"technologies", "tech stack", "skills", "skill",
	},
	sectionEducation: {
		"academic background", "qualifications", "education",
	},
	sectionProjects: {
		"personal projects", "projects", "project", "portfolio",
	},
}

// matchSectionHeader reports whether a line opens one of the target
// sections. When the header carries inline content ("Skills: Python, Go"),
// the remainder after the colon is returned as the section's first line.
func matchSectionHeader(line string) (section, inline string, ok bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "#*• ")
	if trimmed == "" {
		return "", "", false
	}
	lower := strings.ToLower(trimmed)

	for _, section := range []string{sectionExperience, sectionSkills, sectionEducation, sectionProjects} {
		for _, syn := range sectionSynonyms[section] {
			if !strings.HasPrefix(lower, syn) {
				continue
			}
			rest := strings.TrimSpace(trimmed[len(syn):])
			if rest == "" {
				return section, "", true
			}
			if strings.HasPrefix(rest, ":") {
				return section, strings.TrimSpace(rest[1:]), true
			}
		}
	}
	return "", "", false
}

// splitSections partitions CV lines into the target sections. Lines before
// the first recognized header form the preamble (personal info lives there).
func splitSections(lines []string) (sections map[string][]string, preamble []string) {
	sections = make(map[string][]string)
	current := ""

	for _, line := range lines {
		if section, inline, ok := matchSectionHeader(line); ok {
			current = section
			if inline != "" {
				sections[current] = append(sections[current], inline)
			}
			continue
		}
		if current == "" {
			preamble = append(preamble, line)
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections, preamble
}

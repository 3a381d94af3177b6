package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// skillSynonyms maps common skill spelling variants to canonical tokens.
var skillSynonyms = map[string]string{
	"node.js":    "nodejs",
	"node":       "nodejs",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"angular.js": "angular",
	"angularjs":  "angular",
	"c++":        "cpp",
	"c#":         "csharp",
	".net":       "dotnet",
	"postgresql": "postgres",
	"mongodb":    "mongo",
	"k8s":        "kubernetes",
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
}

// Known technology vocabulary by category, in canonical form. Used both to
// categorize skills-section tokens and to scan the whole document.
var (
	knownLanguages = []string{
		"python", "java", "javascript", "typescript", "cpp", "csharp", "go", "rust",
		"php", "ruby", "swift", "kotlin", "scala", "r", "matlab", "sql",
	}
	knownFrameworks = []string{
		"react", "angular", "vue", "django", "flask", "fastapi", "spring",
		"express", "nodejs", "tensorflow", "pytorch", "scikit-learn",
		"pandas", "numpy", "keras", "opencv", "dotnet",
	}
	knownTools = []string{
		"docker", "kubernetes", "git", "jenkins", "aws", "azure", "gcp",
		"terraform", "ansible", "mongo", "postgres", "redis", "elasticsearch",
		"kafka", "spark", "hadoop", "tableau", "powerbi",
	}
)

var (
	innerSpaceRe   = regexp.MustCompile(`\s+`)
	tokenDelimRe   = regexp.MustCompile(`[,|;•·]|(?:\s-\s)`)
	bulletPrefixRe = regexp.MustCompile(`^[•\-*·]\s*|^\d+\.\s*`)
)

// NormalizeSkill normalizes a raw skill token: case-folded, surrounding
// punctuation stripped, spelling variants mapped to canonical names.
// Returns "" for tokens with no usable content.
func NormalizeSkill(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	t = bulletPrefixRe.ReplaceAllString(t, "")
	t = strings.Trim(t, " \t.,;:!?()[]{}\"'")
	t = innerSpaceRe.ReplaceAllString(t, " ")
	if t == "" {
		return ""
	}
	if canonical, ok := skillSynonyms[t]; ok {
		return canonical
	}
	return t
}

// SplitSkillTokens splits a skills-section line on common delimiters and
// normalizes each token. Empty tokens are dropped.
func SplitSkillTokens(line string) []string {
	line = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(line), "")
	parts := tokenDelimRe.Split(line, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := NormalizeSkill(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// categoryOf reports which skill category a canonical token belongs to.
// Unrecognized tokens default to the tools category so no skills-section
// token is ever dropped.
func categoryOf(token string) string {
	for _, l := range knownLanguages {
		if token == l {
			return types.SkillCategoryLanguages
		}
	}
	for _, f := range knownFrameworks {
		if token == f {
			return types.SkillCategoryFrameworks
		}
	}
	return types.SkillCategoryTools
}

// wordPattern builds a match pattern for a technology token, applying word
// boundaries only where the token edge is a word character ("c++" has none
// on the right).
func wordPattern(token string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(token)
	prefix, suffix := "", ""
	if isWordChar(token[0]) {
		prefix = `\b`
	}
	if isWordChar(token[len(token)-1]) {
		suffix = `\b`
	}
	return regexp.MustCompile(`(?i)` + prefix + quoted + suffix)
}

func isWordChar(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// scanVocabulary is every scannable surface form mapped to its canonical
// token, with a compiled pattern. Built once; iteration uses scanOrder for
// deterministic output.
type vocabEntry struct {
	canonical string
	pattern   *regexp.Regexp
}

var scanOrder []vocabEntry

func init() {
	seen := make(map[string]bool)
	add := func(surface, canonical string) {
		if surface == "" || seen[surface] {
			return
		}
		seen[surface] = true
		scanOrder = append(scanOrder, vocabEntry{canonical: canonical, pattern: wordPattern(surface)})
	}
	for _, list := range [][]string{knownLanguages, knownFrameworks, knownTools} {
		for _, tok := range list {
			add(tok, tok)
		}
	}
	// Surface variants ("node.js", "k8s") resolve to their canonical form.
	for _, surface := range synonymKeysSorted {
		add(surface, skillSynonyms[surface])
	}
}

// synonymKeysSorted keeps document scans deterministic across runs.
var synonymKeysSorted = func() []string {
	keys := make([]string, 0, len(skillSynonyms))
	for k := range skillSynonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// ScanKnownTech returns canonical tokens for every known technology
// mentioned anywhere in text, in stable vocabulary order.
func ScanKnownTech(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, entry := range scanOrder {
		if seen[entry.canonical] {
			continue
		}
		if entry.pattern.MatchString(text) {
			seen[entry.canonical] = true
			found = append(found, entry.canonical)
		}
	}
	return found
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill_Variants(t *testing.T) {
	for input, want := range map[string]string{
		"Python":      "python",
		"  Node.js  ": "nodejs",
		"React.JS":    "react",
		"C++":         "cpp",
		"C#":          "csharp",
		"k8s":         "kubernetes",
		"Golang":      "go",
		"PostgreSQL":  "postgres",
		"• Docker":    "docker",
		"(Java)":      "java",
	} {
		assert.Equal(t, want, NormalizeSkill(input), input)
	}
}

func TestNormalizeSkill_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeSkill(""))
	assert.Equal(t, "", NormalizeSkill("  •  "))
}

func TestSplitSkillTokens(t *testing.T) {
	tokens := SplitSkillTokens("Python, Docker | Kubernetes; Node.js • Terraform")
	assert.Equal(t, []string{"python", "docker", "kubernetes", "nodejs", "terraform"}, tokens)
}

func TestSplitSkillTokens_BulletLine(t *testing.T) {
	tokens := SplitSkillTokens("- Go, Rust")
	assert.Equal(t, []string{"go", "rust"}, tokens)
}

func TestScanKnownTech_FindsCanonicalTokens(t *testing.T) {
	text := "Deployed with Docker on AWS, wrote services in Golang and node.js"
	found := ScanKnownTech(text)
	assert.Contains(t, found, "docker")
	assert.Contains(t, found, "aws")
	assert.Contains(t, found, "go")
	assert.Contains(t, found, "nodejs")
}

func TestScanKnownTech_WordBoundaries(t *testing.T) {
	// "gone" must not match "go", "scarlet" must not match "r".
	found := ScanKnownTech("gone scarlet")
	assert.Empty(t, found)
}

func TestScanKnownTech_Deterministic(t *testing.T) {
	text := "python docker kubernetes terraform react"
	assert.Equal(t, ScanKnownTech(text), ScanKnownTech(text))
}

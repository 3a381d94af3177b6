package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

var mandatedSections = []string{
	"## Executive Summary",
	"## Candidate Profile",
	"## Market Requirements",
	"## Gap Analysis",
	"## Upskilling Roadmap",
	"## Recommended Resources",
}

func TestRender_AllSectionsPresent(t *testing.T) {
	rec, analysis, profile := devopsInputs()
	gaps := BuildGaps(rec, analysis, profile)

	text, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)

	for _, section := range mandatedSections {
		assert.Contains(t, text, section)
	}
	assert.True(t, strings.HasPrefix(text, "# Skill Gap Analysis: DevOps Engineer"))
}

func TestRender_ExactlyThreePhases(t *testing.T) {
	rec, analysis, profile := devopsInputs()
	gaps := BuildGaps(rec, analysis, profile)

	text, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(text, "### Phase "))
}

func TestRender_ExactlyThreePhases_NoGaps(t *testing.T) {
	text, err := Render(&types.CandidateRecord{}, &types.SkillAnalysis{}, &types.MarketProfile{Role: "Anything"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(text, "### Phase "))
	for _, section := range mandatedSections {
		assert.Contains(t, text, section)
	}
}

func TestRender_ManyGapsStillThreePhases(t *testing.T) {
	var gaps []types.GapEntry
	for i := 0; i < 20; i++ {
		gaps = append(gaps, types.GapEntry{
			Skill:        strings.Repeat("x", i+1),
			CurrentLevel: types.LevelNone,
			Gap:          types.GapHigh,
			Priority:     types.PriorityCritical,
			FromCore:     true,
		})
	}
	text, err := Render(&types.CandidateRecord{}, &types.SkillAnalysis{}, &types.MarketProfile{Role: "R"}, gaps)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(text, "### Phase "))
}

func TestRender_GapTableRows(t *testing.T) {
	rec, analysis, profile := devopsInputs()
	gaps := BuildGaps(rec, analysis, profile)

	text, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)
	assert.Contains(t, text, "| Infrastructure as Code | None | High | Critical |")
	assert.Contains(t, text, "| Containers | Basic | Medium | Important |")
}

func TestRender_Deterministic(t *testing.T) {
	rec, analysis, profile := devopsInputs()
	gaps := BuildGaps(rec, analysis, profile)

	first, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)
	second, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_ResourcesForCriticalGaps(t *testing.T) {
	rec, analysis, profile := devopsInputs()
	gaps := BuildGaps(rec, analysis, profile)

	text, err := Render(rec, analysis, profile, gaps)
	require.NoError(t, err)
	assert.Contains(t, text, "**Infrastructure as Code**")
	assert.Contains(t, text, "Terraform")
}

func TestRecommendResources_CriticalBeforeImportant(t *testing.T) {
	gaps := []types.GapEntry{
		{Skill: "Containers", Priority: types.PriorityImportant},
		{Skill: "Monitoring", Priority: types.PriorityCritical},
	}
	entries := RecommendResources(gaps)
	require.Len(t, entries, 2)
	assert.Equal(t, "Monitoring", entries[0].Skill)
	assert.Equal(t, "Containers", entries[1].Skill)
}

func TestRecommendResources_EmptyGapsStillYieldsResources(t *testing.T) {
	entries := RecommendResources(nil)
	require.NotEmpty(t, entries)
	assert.NotEmpty(t, entries[0].Materials)
}

func TestRecommendResources_UnknownSkillGetsGenericMaterials(t *testing.T) {
	entries := RecommendResources([]types.GapEntry{
		{Skill: "Quantum Plumbing", Priority: types.PriorityCritical},
	})
	require.Len(t, entries, 1)
	assert.Equal(t, genericResources, entries[0].Materials)
}

package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

func TestStaticLookup_ExactMatch(t *testing.T) {
	profile, err := StaticLookup("DevOps Engineer")
	require.NoError(t, err)
	assert.Equal(t, "DevOps Engineer", profile.Role)
	assert.Equal(t, types.MarketSourceStatic, profile.Source)
	assert.Contains(t, profile.CoreRequirements, "Infrastructure as Code")
	assert.Contains(t, profile.CoreRequirements, "Monitoring")
}

func TestStaticLookup_SynonymMapping(t *testing.T) {
	for synonym, want := range map[string]string{
		"ML Engineer":               "Machine Learning Engineer",
		"SRE":                       "DevOps Engineer",
		"Site Reliability Engineer": "DevOps Engineer",
		"Fullstack Engineer":        "Full Stack Engineer",
		"Backend Developer":         "Backend Engineer",
	} {
		profile, err := StaticLookup(synonym)
		require.NoError(t, err, synonym)
		assert.Equal(t, want, profile.Role, synonym)
	}
}

func TestStaticLookup_SubstringMatch(t *testing.T) {
	profile, err := StaticLookup("Senior Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", profile.Role)
}

func TestStaticLookup_CaseAndWhitespace(t *testing.T) {
	profile, err := StaticLookup("  devops   ENGINEER ")
	require.NoError(t, err)
	assert.Equal(t, "DevOps Engineer", profile.Role)
}

func TestStaticLookup_UnknownRole(t *testing.T) {
	_, err := StaticLookup("Underwater Basket Weaver")
	require.Error(t, err)
	var notFound *ErrRoleNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestStaticLookup_ReturnsCopy(t *testing.T) {
	first, err := StaticLookup("Data Engineer")
	require.NoError(t, err)
	first.Role = "mutated"

	second, err := StaticLookup("Data Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", second.Role)
}

func TestFallbackProfile(t *testing.T) {
	profile := FallbackProfile("Underwater Basket Weaver")
	assert.Equal(t, "Underwater Basket Weaver", profile.Role)
	assert.Equal(t, types.MarketSourceFallback, profile.Source)
	assert.NotEmpty(t, profile.CoreRequirements)
	assert.Equal(t, types.DemandMedium, profile.Demand)
}

func TestFallbackProfile_RoleKeywordTilt(t *testing.T) {
	profile := FallbackProfile("Data Wrangler")
	assert.Contains(t, profile.CoreRequirements, "SQL")

	profile = FallbackProfile("Security Analyst")
	assert.Contains(t, profile.CoreRequirements, "Security Fundamentals")
}

func TestRoles_SortedAndComplete(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, len(staticProfiles))
	assert.Contains(t, roles, "DevOps Engineer")
	assert.Contains(t, roles, "AI Engineer")
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "devops engineer", NormalizeRole("  DevOps   Engineer "))
	assert.Equal(t, "machine learning engineer", NormalizeRole("MLE"))
}

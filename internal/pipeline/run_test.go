package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/config"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

const devopsCV = `John Smith
john.smith@example.com

Experience
Senior Engineer at Acme Corp 2019 - 2023
- Led a team of 5 engineers
- Deployed services with Docker

Skills: Python, Docker, Kubernetes
`

func TestRun_DevOpsScenario(t *testing.T) {
	result, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", config.Default())
	require.NoError(t, err)
	require.NotNil(t, result)

	var iac *types.GapEntry
	for i := range result.Gaps {
		if result.Gaps[i].Skill == "Infrastructure as Code" {
			iac = &result.Gaps[i]
		}
	}
	require.NotNil(t, iac, "expected a gap entry for Infrastructure as Code")
	assert.Equal(t, types.LevelNone, iac.CurrentLevel)
	assert.Equal(t, types.GapHigh, iac.Gap)
	assert.Equal(t, types.PriorityCritical, iac.Priority)

	found := false
	for _, tr := range result.Skills.Transferable {
		if tr.Skill == "leadership" || tr.Skill == "project management" {
			found = true
			assert.Contains(t, tr.Evidence, "Led a team")
		}
	}
	assert.True(t, found, "expected a leadership or project management inference")

	assert.Equal(t, types.MarketSourceStatic, result.Market.Source)
	assert.NotEmpty(t, result.Report)
}

func TestRun_Idempotent(t *testing.T) {
	first, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", config.Default())
	require.NoError(t, err)
	second, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", config.Default())
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, first.Gaps, second.Gaps)
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_HeaderlessCV(t *testing.T) {
	result, err := RunAnalysis(context.Background(),
		"Some person who did various things over several years.", "DevOps Engineer", config.Default())
	require.NoError(t, err)

	for _, section := range []string{
		"## Executive Summary", "## Candidate Profile", "## Market Requirements",
		"## Gap Analysis", "## Upskilling Roadmap", "## Recommended Resources",
	} {
		assert.Contains(t, result.Report, section)
	}

	coverage := false
	for _, warning := range result.Warnings {
		if strings.Contains(warning, "low section coverage") {
			coverage = true
		}
	}
	assert.True(t, coverage, "expected a low section coverage warning")
}

func TestRun_EmptyArgumentsRejected(t *testing.T) {
	var verr *ValidationError

	_, err := RunAnalysis(context.Background(), "", "DevOps Engineer", config.Default())
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)

	_, err = RunAnalysis(context.Background(), devopsCV, "   ", config.Default())
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)
}

func TestRun_InvalidOptionsRejected(t *testing.T) {
	opts := config.Default()
	opts.EnableRemoteMarketData = true // no MarketDataURL
	_, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_data_url")
}

func TestRun_RemoteProviderUsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"role": "DevOps Engineer",
			"core_requirements": ["GitOps", "Kubernetes"],
			"demand": "high"
		}`))
	}))
	defer server.Close()

	opts := config.Default()
	opts.EnableRemoteMarketData = true
	opts.MarketDataURL = server.URL

	result, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", opts)
	require.NoError(t, err)
	assert.Equal(t, types.MarketSourceRemote, result.Market.Source)
	assert.Equal(t, []string{"GitOps", "Kubernetes"}, result.Market.CoreRequirements)
}

func TestRun_RemoteFailureDegradesToStatic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	opts := config.Default()
	opts.EnableRemoteMarketData = true
	opts.MarketDataURL = server.URL

	result, err := RunAnalysis(context.Background(), devopsCV, "DevOps Engineer", opts)
	require.NoError(t, err)
	assert.Equal(t, types.MarketSourceStatic, result.Market.Source)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "remote market lookup failed")
}

func TestRun_ProgressEvents(t *testing.T) {
	p := New(config.Default(), nil)
	var stages []string
	p.OnProgress = func(event ProgressEvent) {
		stages = append(stages, event.Stage)
		assert.NotEmpty(t, event.RunID)
	}

	_, err := p.Run(context.Background(), devopsCV, "DevOps Engineer")
	require.NoError(t, err)
	assert.Equal(t, []string{"extract", "infer", "market", "report"}, stages)
}

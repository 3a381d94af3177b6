package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

const validPayload = `{
	"role": "Platform Engineer",
	"core_requirements": ["Kubernetes", "Terraform", "CI/CD"],
	"preferred_qualifications": ["Go"],
	"emerging_trends": ["GitOps"],
	"demand": "very-high",
	"salary": {"min": 120000, "max": 190000, "currency": "USD"},
	"tech_stack": {"languages": ["go"], "tools": ["kubernetes", "terraform"]}
}`

func TestMatcher_StaticOnly(t *testing.T) {
	matcher := NewMatcher()
	profile, warnings := matcher.Lookup(context.Background(), "DevOps Engineer")
	require.NotNil(t, profile)
	assert.Empty(t, warnings)
	assert.Equal(t, types.MarketSourceStatic, profile.Source)
}

func TestMatcher_UnknownRoleFallsBack(t *testing.T) {
	matcher := NewMatcher()
	profile, warnings := matcher.Lookup(context.Background(), "Underwater Basket Weaver")
	require.NotNil(t, profile)
	assert.Equal(t, types.MarketSourceFallback, profile.Source)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "generic software engineering profile")
}

func TestMatcher_RemoteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/roles/platform%20engineer", r.URL.EscapedPath())
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validPayload))
	}))
	defer server.Close()

	src := NewRemoteSource(server.URL, "secret", time.Second)
	matcher := NewMatcher(WithRemote(src, time.Second))

	profile, warnings := matcher.Lookup(context.Background(), "Platform Engineer")
	require.NotNil(t, profile)
	assert.Empty(t, warnings)
	assert.Equal(t, types.MarketSourceRemote, profile.Source)
	assert.Equal(t, "Platform Engineer", profile.Role)
	assert.Equal(t, types.DemandVeryHigh, profile.Demand)
	assert.Equal(t, []string{"Kubernetes", "Terraform", "CI/CD"}, profile.CoreRequirements)
}

func TestMatcher_RemoteServerErrorFallsBackToStatic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewRemoteSource(server.URL, "", time.Second)
	matcher := NewMatcher(WithRemote(src, time.Second))

	profile, warnings := matcher.Lookup(context.Background(), "DevOps Engineer")
	require.NotNil(t, profile)
	assert.Equal(t, types.MarketSourceStatic, profile.Source)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "remote market lookup failed")
}

func TestMatcher_RemoteMalformedPayloadFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"role": "DevOps Engineer"}`))
	}))
	defer server.Close()

	src := NewRemoteSource(server.URL, "", time.Second)
	matcher := NewMatcher(WithRemote(src, time.Second))

	profile, warnings := matcher.Lookup(context.Background(), "DevOps Engineer")
	require.NotNil(t, profile)
	assert.Equal(t, types.MarketSourceStatic, profile.Source)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "remote market lookup failed")
}

func TestMatcher_RemoteTimeoutFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(validPayload))
	}))
	defer server.Close()

	src := NewRemoteSource(server.URL, "", 20*time.Millisecond)
	matcher := NewMatcher(WithRemote(src, 20*time.Millisecond))

	profile, warnings := matcher.Lookup(context.Background(), "DevOps Engineer")
	require.NotNil(t, profile)
	assert.Equal(t, types.MarketSourceStatic, profile.Source)
	require.Len(t, warnings, 1)
}

func TestRemoteSource_InvalidDemandRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"role": "X", "core_requirements": ["Y"], "demand": "astronomical"}`))
	}))
	defer server.Close()

	src := NewRemoteSource(server.URL, "", time.Second)
	_, err := src.Fetch(context.Background(), "X")
	require.Error(t, err)
	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
}

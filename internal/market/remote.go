package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/schemas"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// maxRemoteBodySize bounds how much of a provider response is read.
const maxRemoteBodySize = 1 << 20

// RemoteError represents a failed remote market lookup.
type RemoteError struct {
	Role    string
	Message string
	Cause   error
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote market lookup for %q: %s: %v", e.Role, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote market lookup for %q: %s", e.Role, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// RemoteSource fetches market profiles from an HTTP provider exposing
// GET {base}/roles/{role}. Responses are schema-validated before decoding.
type RemoteSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteSource builds a remote source with the given base URL and
// per-request timeout. The API key is optional.
func NewRemoteSource(baseURL, apiKey string, timeout time.Duration) *RemoteSource {
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// remotePayload mirrors the provider wire format.
type remotePayload struct {
	Role                    string   `json:"role"`
	CoreRequirements        []string `json:"core_requirements"`
	PreferredQualifications []string `json:"preferred_qualifications"`
	EmergingTrends          []string `json:"emerging_trends"`
	Demand                  string   `json:"demand"`
	Salary                  struct {
		Min      int    `json:"min"`
		Max      int    `json:"max"`
		Currency string `json:"currency"`
	} `json:"salary"`
	GrowthAreas []string `json:"growth_areas"`
	TechStack   struct {
		Languages  []string `json:"languages"`
		Frameworks []string `json:"frameworks"`
		Tools      []string `json:"tools"`
	} `json:"tech_stack"`
}

// Fetch retrieves the market profile for a role from the provider.
func (s *RemoteSource) Fetch(ctx context.Context, role string) (*types.MarketProfile, error) {
	// The provider gets the role as given, case-folded, without the static
	// dataset's synonym mapping applied.
	slug := roleSpaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(role)), " ")
	endpoint := s.baseURL + "/roles/" + url.PathEscape(slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RemoteError{Role: role, Message: "building request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RemoteError{Role: role, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{
			Role:    role,
			Message: fmt.Sprintf("provider returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBodySize))
	if err != nil {
		return nil, &RemoteError{Role: role, Message: "reading response body", Cause: err}
	}

	if err := schemas.ValidateMarketPayload(body); err != nil {
		return nil, &RemoteError{Role: role, Message: "payload failed schema validation", Cause: err}
	}

	var payload remotePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &RemoteError{Role: role, Message: "decoding payload", Cause: err}
	}

	return payload.toProfile(), nil
}

func (p *remotePayload) toProfile() *types.MarketProfile {
	return &types.MarketProfile{
		Role:                    p.Role,
		CoreRequirements:        p.CoreRequirements,
		PreferredQualifications: p.PreferredQualifications,
		EmergingTrends:          p.EmergingTrends,
		Demand:                  types.DemandLevel(p.Demand),
		Salary: types.SalaryRange{
			Min:      p.Salary.Min,
			Max:      p.Salary.Max,
			Currency: p.Salary.Currency,
		},
		GrowthAreas: p.GrowthAreas,
		TechStack: types.TechStack{
			Languages:  p.TechStack.Languages,
			Frameworks: p.TechStack.Frameworks,
			Tools:      p.TechStack.Tools,
		},
		Source: types.MarketSourceRemote,
	}
}

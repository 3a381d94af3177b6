// Package market resolves a target role to a market requirements profile.
// Resolution prefers a remote provider when one is configured, falls back
// to the built-in dataset, and finally to a generic profile, so a lookup
// never fails outright. Degraded resolution is reported through warnings.
package market

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// Source fetches a market profile for a role from an external provider.
type Source interface {
	Fetch(ctx context.Context, role string) (*types.MarketProfile, error)
}

// Matcher resolves target roles to market profiles.
type Matcher struct {
	remote  Source
	timeout time.Duration
	log     *zap.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithRemote enables a remote source consulted before the static dataset.
func WithRemote(src Source, timeout time.Duration) MatcherOption {
	return func(m *Matcher) {
		m.remote = src
		m.timeout = timeout
	}
}

// WithLogger attaches a logger for lookup diagnostics.
func WithLogger(log *zap.Logger) MatcherOption {
	return func(m *Matcher) {
		m.log = log
	}
}

// NewMatcher builds a matcher over the built-in dataset.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lookup resolves a role to a market profile. It never returns an error:
// remote failures and unknown roles degrade to the static dataset and the
// generic fallback profile, with each degradation reported as a warning.
func (m *Matcher) Lookup(ctx context.Context, role string) (*types.MarketProfile, []string) {
	var warnings []string

	if m.remote != nil {
		fetchCtx := ctx
		if m.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, m.timeout)
			defer cancel()
		}
		profile, err := m.remote.Fetch(fetchCtx, role)
		if err == nil {
			m.log.Debug("market profile resolved remotely", zap.String("role", role))
			return profile, warnings
		}
		m.log.Warn("remote market lookup failed", zap.String("role", role), zap.Error(err))
		warnings = append(warnings, "remote market lookup failed, using built-in dataset: "+err.Error())
	}

	profile, err := StaticLookup(role)
	if err == nil {
		m.log.Debug("market profile resolved from built-in dataset",
			zap.String("role", role), zap.String("matched", profile.Role))
		return profile, warnings
	}

	m.log.Warn("role not in built-in dataset, using generic profile", zap.String("role", role))
	warnings = append(warnings, "role not found in market dataset, using generic software engineering profile")
	return FallbackProfile(role), warnings
}

// Package pipeline orchestrates the four-stage skill-gap analysis:
// extraction, skill inference, market matching, and report rendering.
// Stages run strictly in sequence over immutable artifacts. Degraded
// stages surface warnings on the result; only invalid arguments abort
// a run.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/santanamnaa/ai-skill-gap-analyst/internal/config"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/extract"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/infer"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/market"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/report"
	"github.com/santanamnaa/ai-skill-gap-analyst/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called after each pipeline stage completes.
type ProgressCallback func(event ProgressEvent)

// ValidationError reports invalid pipeline arguments. This is the only
// error class that aborts a run before any stage executes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Message)
}

// Pipeline runs skill-gap analyses with a fixed configuration.
type Pipeline struct {
	opts config.Options
	log  *zap.Logger

	// OnProgress, when set, receives an event after each stage.
	OnProgress ProgressCallback
}

// New builds a pipeline. A nil logger disables logging.
func New(opts config.Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{opts: opts, log: log}
}

// RunAnalysis runs a single analysis with the given options and no
// logging. It is the minimal entry point for library callers.
func RunAnalysis(ctx context.Context, rawCV, targetRole string, opts config.Options) (*types.AnalysisResult, error) {
	return New(opts, zap.NewNop()).Run(ctx, rawCV, targetRole)
}

// Run executes the full analysis. Given valid arguments it always
// produces a result with a rendered report; reduced-confidence conditions
// are attached as warnings rather than returned as errors.
func (p *Pipeline) Run(ctx context.Context, rawCV, targetRole string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(rawCV) == "" {
		return nil, &ValidationError{Field: "cv_text", Message: "must not be empty"}
	}
	if strings.TrimSpace(targetRole) == "" {
		return nil, &ValidationError{Field: "target_role", Message: "must not be empty"}
	}
	if err := p.opts.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := p.log.With(zap.String("run_id", runID.String()))
	log.Info("analysis started", zap.String("target_role", targetRole), zap.Int("cv_bytes", len(rawCV)))

	var warnings []string

	start := time.Now()
	rec, extractWarnings := extract.Parse(rawCV)
	warnings = append(warnings, extractWarnings...)
	log.Info("extraction complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("experience_entries", len(rec.Experience)),
		zap.Int("skill_tokens", len(rec.AllSkillTokens())),
		zap.Int("warnings", len(extractWarnings)))
	p.emit("extract", "structured candidate record built", runID)

	start = time.Now()
	analysis := infer.Analyze(rec)
	log.Info("skill inference complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("implicit", len(analysis.Implicit)),
		zap.Int("transferable", len(analysis.Transferable)))
	p.emit("infer", "skill analysis derived", runID)

	start = time.Now()
	profile, marketWarnings := p.matcher(log).Lookup(ctx, targetRole)
	warnings = append(warnings, marketWarnings...)
	log.Info("market matching complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("matched_role", profile.Role),
		zap.String("source", profile.Source))
	p.emit("market", "market profile resolved from "+profile.Source, runID)

	start = time.Now()
	gaps := report.BuildGaps(rec, analysis, profile)
	text, err := report.Render(rec, analysis, profile, gaps)
	if err != nil {
		return nil, fmt.Errorf("report rendering failed: %w", err)
	}
	log.Info("report rendered",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("gaps", len(gaps)),
		zap.Int("report_bytes", len(text)))
	p.emit("report", "markdown report rendered", runID)

	return &types.AnalysisResult{
		RunID:     runID,
		Candidate: rec,
		Skills:    analysis,
		Market:    profile,
		Gaps:      gaps,
		Report:    text,
		Warnings:  warnings,
	}, nil
}

// matcher assembles the market matcher per the run options. The remote
// source is consulted only when explicitly enabled.
func (p *Pipeline) matcher(log *zap.Logger) *market.Matcher {
	opts := []market.MatcherOption{market.WithLogger(log)}
	if p.opts.EnableRemoteMarketData && p.opts.MarketDataURL != "" {
		src := market.NewRemoteSource(p.opts.MarketDataURL, p.opts.MarketAPIKey, p.opts.RemoteTimeout())
		opts = append(opts, market.WithRemote(src, p.opts.RemoteTimeout()))
	}
	return market.NewMatcher(opts...)
}

func (p *Pipeline) emit(stage, message string, runID uuid.UUID) {
	if p.OnProgress != nil {
		p.OnProgress(ProgressEvent{Stage: stage, Message: message, RunID: runID.String()})
	}
}

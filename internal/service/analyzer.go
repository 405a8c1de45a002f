// Package service contains the business logic layer.
package service

import (
	"context"
	"time"

	"github.com/yt-analyzer/internal/checklist"
	"github.com/yt-analyzer/internal/content"
	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/internal/metrics"
	"go.uber.org/zap"
)

// Persister receives finished results. Implementations must not block.
type Persister interface {
	Record(result *domain.AnalysisResult)
}

// Analyzer orchestrates the content generation pipeline.
type Analyzer struct {
	evaluator *checklist.Evaluator
	persister Persister
	logger    *zap.Logger
}

// NewAnalyzer creates a new Analyzer with all dependencies.
func NewAnalyzer(evaluator *checklist.Evaluator, persister Persister, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		evaluator: evaluator,
		persister: persister,
		logger:    logger.Named("analyzer"),
	}
}

// Analyze runs the pipeline:
// 1. Apply defaults and validate the request
// 2. Generate every artifact in a fixed order
// 3. Score the artifacts against the checklist
// 4. Hand the result to the persister and return it
//
// The only error returned is a validation failure; persistence outcome
// never affects the result.
func (a *Analyzer) Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	startTime := time.Now()

	r := req.Normalize()
	if err := r.Validate(); err != nil {
		return nil, domain.WrapError("validate_request", err, false)
	}

	a.logger.Debug("starting analysis",
		zap.String("platform", r.Platform),
		zap.Int("keyword_count", len(r.Keywords)),
	)

	// Only the four known formats steer the angle; platforms such as
	// "youtube" or "shorts" get the tutorial angle.
	formatHint := string(content.FormatTutorial)
	if isFormat(r.Platform) {
		formatHint = r.Platform
	}

	result := &domain.AnalysisResult{
		Topic:    r.Topic,
		Keywords: r.Keywords,
		Niche:    domain.Optional(r.Niche),
		Audience: domain.Optional(r.Audience),
		Format:   r.Platform,
		Platform: r.Platform,
		Region:   r.Region,

		SEOTitle:    content.Title(r.Topic, r.Keywords),
		Hook:        content.Hook(r.Topic, r.Audience),
		Angle:       content.Angle(formatHint, r.Topic),
		CTA:         content.CTA(r.Audience),
		Hashtags:    content.Hashtags(r.Keywords, r.Niche),
		PostTime:    content.PostTime(r.Region, r.Platform),
		Description: content.Description(r.Topic, r.Keywords),
	}

	scored := a.evaluator.Evaluate(checklist.Input{
		Hook:        result.Hook,
		SEOTitle:    result.SEOTitle,
		Keywords:    result.Keywords,
		Angle:       result.Angle,
		CTA:         result.CTA,
		Hashtags:    result.Hashtags,
		Description: result.Description,
		PostTime:    result.PostTime,
	})
	result.Score = scored.Score
	result.Criteria = scored.Criteria

	metrics.ObserveAnalysis(platformLabel(r.Platform), result.Score, result.Criteria)

	a.persister.Record(result)

	a.logger.Info("analysis completed",
		zap.Int("score", result.Score),
		zap.Int("hashtags", len(result.Hashtags)),
		zap.Duration("duration", time.Since(startTime)),
	)

	return result, nil
}

// isFormat matches the four angle formats exactly, case included.
func isFormat(platform string) bool {
	return content.Format(platform).IsKnown()
}

// platformLabel bounds metric label cardinality to known values.
func platformLabel(platform string) string {
	if platform == domain.DefaultPlatform || platform == content.PlatformShorts || isFormat(platform) {
		return platform
	}
	return "other"
}

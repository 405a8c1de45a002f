package store

import (
	"fmt"

	"github.com/yt-analyzer/internal/domain"
)

// Validate checks that doc matches the stored analysis schema before it is
// written.
func Validate(doc *domain.AnalysisResult) error {
	if doc == nil {
		return domain.WrapError("validate",
			fmt.Errorf("%w: document is nil", domain.ErrInvalidRecord), false)
	}

	required := []struct {
		field string
		value string
	}{
		{"topic", doc.Topic},
		{"format", doc.Format},
		{"platform", doc.Platform},
		{"seo_title", doc.SEOTitle},
		{"hook", doc.Hook},
		{"angle", doc.Angle},
		{"cta", doc.CTA},
		{"description", doc.Description},
		{"post_time", doc.PostTime},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.WrapError("validate_"+r.field,
				fmt.Errorf("%w: %s is required", domain.ErrInvalidRecord, r.field), false)
		}
	}

	if doc.Score < 0 || doc.Score > 100 {
		return domain.WrapError("validate_score",
			fmt.Errorf("%w: score must be between 0 and 100, got: %d", domain.ErrInvalidRecord, doc.Score), false)
	}

	if len(doc.Criteria) == 0 {
		return domain.WrapError("validate_criteria",
			fmt.Errorf("%w: criteria is required", domain.ErrInvalidRecord), false)
	}

	for i, h := range doc.Hashtags {
		if h == "" {
			return domain.WrapError("validate_hashtags",
				fmt.Errorf("%w: hashtag[%d] is empty", domain.ErrInvalidRecord, i), false)
		}
	}

	return nil
}

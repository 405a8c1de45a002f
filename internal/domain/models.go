// Package domain contains the core domain models and types.
// These models represent the business logic contracts and are independent
// of any infrastructure concerns.
package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultPlatform is used when the request omits a platform.
	DefaultPlatform = "youtube"

	// DefaultRegion is used when the request omits a region.
	DefaultRegion = "WIB"
)

// AnalysisRequest represents an incoming content analysis request.
type AnalysisRequest struct {
	// Topic is the video topic. It must contain at least one word.
	Topic string `json:"topic" binding:"required"`

	// Keywords are the main keywords, most important first.
	Keywords []string `json:"keywords"`

	// Niche is the content niche (optional).
	Niche string `json:"niche"`

	// Audience is the target audience (optional).
	Audience string `json:"audience"`

	// Platform is either a target platform ("youtube", "shorts") or a
	// format hint ("tutorial", "listicle", "study", "review").
	Platform string `json:"platform"`

	// Region is the timezone label used for the posting time, e.g. WIB/WITA/WIT.
	Region string `json:"region"`
}

// Normalize returns a copy of the request with defaults applied.
func (r AnalysisRequest) Normalize() AnalysisRequest {
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if r.Platform == "" {
		r.Platform = DefaultPlatform
	}
	if r.Region == "" {
		r.Region = DefaultRegion
	}
	return r
}

// Validate checks the request contract required by the generators.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic must contain at least one word", ErrInvalidRequest)
	}
	return nil
}

// AnalysisResult is the generated content plan for one request.
// It is built once per request and never mutated afterwards.
type AnalysisResult struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
	Niche    *string  `json:"niche"`
	Audience *string  `json:"audience"`

	// Format is the platform value used as the angle format hint.
	Format   string `json:"format"`
	Platform string `json:"platform"`
	Region   string `json:"region"`

	// Generated fields
	SEOTitle    string   `json:"seo_title"`
	Hook        string   `json:"hook"`
	Angle       string   `json:"angle"`
	CTA         string   `json:"cta"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	PostTime    string   `json:"post_time"`

	// Scoring
	Score    int             `json:"score"`
	Criteria map[string]bool `json:"criteria"`
}

// Clone returns a deep copy so the result can be handed to another goroutine.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Keywords = slices.Clone(r.Keywords)
	c.Hashtags = slices.Clone(r.Hashtags)
	c.Criteria = maps.Clone(r.Criteria)
	if r.Niche != nil {
		n := *r.Niche
		c.Niche = &n
	}
	if r.Audience != nil {
		a := *r.Audience
		c.Audience = &a
	}
	return &c
}

// StoredAnalysis is an AnalysisResult as read back from the datastore.
type StoredAnalysis struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AnalysisResult
}

// Optional returns nil for an empty string and a pointer to s otherwise.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ErrorResponse is the body returned when a request is rejected.
type ErrorResponse struct {
	// Success is always false.
	Success bool `json:"success"`

	// Error describes why the request was rejected.
	Error string `json:"error"`

	// RequestID correlates the response with server logs.
	RequestID string `json:"request_id,omitempty"`

	// ProcessedAt is the time the request was rejected.
	ProcessedAt time.Time `json:"processed_at"`
}

// Package checklist scores a generated content plan against a fixed set of
// quality checks. Checks are declared as a table, in the same spirit as a
// rule set, and evaluated independently of each other.
package checklist

import (
	"strings"

	"github.com/yt-analyzer/internal/content"
	"github.com/yt-analyzer/pkg/textutil"
)

// Check names as reported in the criteria map.
const (
	HookWordCount        = "hook_word_count"
	TitleContainsKeyword = "title_contains_keyword"
	AngleSpecificity     = "angle_specificity"
	CTAClarity           = "cta_clarity"
	HashtagCount         = "hashtag_count"
	DescriptionLength    = "description_length"
	HasPostTime          = "has_post_time"
)

// Input is the artifact set a checklist is evaluated against.
type Input struct {
	Hook        string
	SEOTitle    string
	Keywords    []string
	Angle       string
	CTA         string
	Hashtags    []string
	Description string
	PostTime    string
}

// Check is a single named predicate over an Input.
type Check struct {
	// ID is the key used in the criteria map.
	ID string

	// Description explains what the check verifies.
	Description string

	// Pass reports whether the input satisfies the check.
	Pass func(in Input) bool
}

var (
	angleMarkers = []string{"langkah", "studi", "review", "kerangka", "daftar"}
	ctaMarkers   = []string{"subscribe", "ikuti", "simpan", "komentar", "like"}
)

// DefaultChecks returns the built-in seven-item checklist.
func DefaultChecks() []*Check {
	return []*Check{
		{
			ID:          HookWordCount,
			Description: "Hook is between 6 and 16 words",
			Pass: func(in Input) bool {
				n := textutil.WordCount(in.Hook)
				return n >= content.HookMinWords && n <= content.HookMaxWords
			},
		},
		{
			ID:          TitleContainsKeyword,
			Description: "Title mentions at least one keyword",
			Pass:        titleContainsKeyword,
		},
		{
			ID:          AngleSpecificity,
			Description: "Angle names a concrete format",
			Pass: func(in Input) bool {
				return textutil.ContainsAny(in.Angle, angleMarkers)
			},
		},
		{
			ID:          CTAClarity,
			Description: "Call-to-action asks for a concrete action",
			Pass: func(in Input) bool {
				return textutil.ContainsAny(in.CTA, ctaMarkers)
			},
		},
		{
			ID:          HashtagCount,
			Description: "Between 3 and 10 hashtags",
			Pass: func(in Input) bool {
				return len(in.Hashtags) >= content.MinHashtags && len(in.Hashtags) <= content.MaxHashtags
			},
		},
		{
			ID:          DescriptionLength,
			Description: "Description is 80 to 220 characters",
			Pass: func(in Input) bool {
				n := textutil.Len(in.Description)
				return n >= content.DescriptionMinLen && n <= content.DescriptionMaxLen
			},
		},
		{
			ID:          HasPostTime,
			Description: "A posting time is recommended",
			Pass: func(in Input) bool {
				return in.PostTime != ""
			},
		},
	}
}

// titleContainsKeyword is vacuously true when there are no keywords.
func titleContainsKeyword(in Input) bool {
	if len(in.Keywords) == 0 {
		return true
	}
	title := strings.ToLower(in.SEOTitle)
	for _, k := range in.Keywords {
		if strings.Contains(title, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

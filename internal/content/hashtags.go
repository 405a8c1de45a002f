package content

import (
	"strings"

	"github.com/yt-analyzer/pkg/textutil"
)

const (
	// MinHashtags and MaxHashtags bound the number of hashtags returned.
	MinHashtags = 3
	MaxHashtags = 10

	hashtagKeywordLimit = 5
	hashtagPad          = "#contentcreator"
	hashtagPlatform     = "#YouTubeTips"
)

// Hashtags builds between MinHashtags and MaxHashtags tags from the first
// five keywords and the niche.
//
// Each keyword yields its tag as typed followed by a capitalized variant.
// Tags are deduplicated case-insensitively in first-seen order, so the
// variant survives only when it differs beyond case. A blank niche adds
// nothing. When fewer than MinHashtags survive the list is padded with
// #contentcreator, which may repeat.
func Hashtags(keywords []string, niche string) []string {
	var pool []string

	limit := min(len(keywords), hashtagKeywordLimit)
	for _, k := range keywords[:limit] {
		token := textutil.Condense(k)
		if token == "" {
			continue
		}
		pool = append(pool, "#"+token, "#"+textutil.Capitalize(token))
	}

	if n := textutil.Condense(niche); n != "" {
		pool = append(pool, "#"+n, "#"+n+"Indonesia", hashtagPlatform)
	}

	seen := make(map[string]struct{}, len(pool))
	tags := make([]string, 0, MaxHashtags)
	for _, h := range pool {
		key := strings.ToLower(h)
		if _, dup := seen[key]; dup || len(tags) >= MaxHashtags {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, h)
	}

	for len(tags) < MinHashtags {
		tags = append(tags, hashtagPad)
	}
	return tags[:min(len(tags), MaxHashtags)]
}

// Package presets holds the static reference tables served to clients:
// timezone presets, audience presets and creator templates.
//
// The tables are package-level values that this package never writes, so
// they are safe for concurrent reads without locking. Get hands out the
// shared catalog itself, not a copy: its slices alias the package tables
// and callers must not modify them.
package presets

// Notes accompanies the catalog to remind clients the values are heuristics.
const Notes = "Semua nilai bersifat heuristik. Sesuaikan dengan data analitik channel Anda."

// Timezone is a UTC offset with example places.
type Timezone struct {
	Code     string   `json:"code"`
	Examples []string `json:"examples"`
}

// Audience describes a country audience profile.
type Audience struct {
	Country         string   `json:"country"`
	Language        string   `json:"language"`
	Timezone        string   `json:"timezone"`
	Platforms       []string `json:"platforms"`
	Interests       []string `json:"interests"`
	PurchasingPower string   `json:"purchasing_power"`
	BestPostTimes   []string `json:"best_post_times"`
	CulturalNotes   string   `json:"cultural_notes"`
}

// CreatorIdentity is the identity section of the creator template.
type CreatorIdentity struct {
	Handle       string `json:"handle"`
	Niche        string `json:"niche"`
	Persona      string `json:"persona"`
	AudienceCore string `json:"audience_core"`
}

type ContentPattern struct {
	Format   string `json:"format"`
	Duration string `json:"duration"`
	Hook     string `json:"hook"`
	Angle    string `json:"angle"`
	CTA      string `json:"cta"`
}

type TitleThumbnail struct {
	TitleFormula   string   `json:"title_formula"`
	KeywordsCommon []string `json:"keywords_common"`
	ThumbnailStyle string   `json:"thumbnail_style"`
}

type Schedule struct {
	DaysHours      string `json:"days_hours"`
	Frequency      string `json:"frequency"`
	TopVideosTheme string `json:"top_videos_theme"`
}

type GapsOpportunities struct {
	MissingTopics    []string `json:"missing_topics"`
	FormatVariations []string `json:"format_variations"`
	CollabCandidates []string `json:"collab_candidates"`
}

// OutputStructure mirrors the fields of a generated analysis, left blank.
type OutputStructure struct {
	SEOTitle    string   `json:"seo_title"`
	Hook        string   `json:"hook"`
	Angle       string   `json:"angle"`
	CTA         string   `json:"cta"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	PostTime    string   `json:"post_time"`
}

// CreatorTemplate is a worksheet for breaking down a creator's channel.
type CreatorTemplate struct {
	Identity          CreatorIdentity   `json:"identity"`
	ContentPattern    ContentPattern    `json:"content_pattern"`
	TitleThumbnail    TitleThumbnail    `json:"title_thumbnail"`
	Schedule          Schedule          `json:"schedule"`
	GapsOpportunities GapsOpportunities `json:"gaps_opportunities"`
	OutputStructure   OutputStructure   `json:"output_structure"`
}

type CreatorPatterns struct {
	Format string `json:"format"`
	Title  string `json:"title"`
	CTA    string `json:"cta"`
}

// CreatorPreset is a filled-in breakdown of a well-known channel.
type CreatorPreset struct {
	Handle   string          `json:"handle"`
	Niche    string          `json:"niche"`
	Persona  string          `json:"persona"`
	Patterns CreatorPatterns `json:"patterns"`
}

// Catalog is the full reference payload served by GET /api/presets.
type Catalog struct {
	Timezones       []Timezone      `json:"timezones"`
	Audiences       []Audience      `json:"audiences"`
	CreatorTemplate CreatorTemplate `json:"creator_template"`
	CreatorPresets  []CreatorPreset `json:"creator_presets"`
	Notes           string          `json:"notes"`
}

var catalog = Catalog{
	Timezones:       timezones,
	Audiences:       audiences,
	CreatorTemplate: creatorTemplate,
	CreatorPresets:  creatorPresets,
	Notes:           Notes,
}

// Get returns the shared reference catalog. Every call returns the same
// pointer; the result is read-only.
func Get() *Catalog {
	return &catalog
}

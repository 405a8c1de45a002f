package presets

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGet_TableSizes(t *testing.T) {
	c := Get()

	if got := len(c.Timezones); got != 24 {
		t.Errorf("len(Timezones) = %d, want 24", got)
	}
	if got := len(c.Audiences); got != 65 {
		t.Errorf("len(Audiences) = %d, want 65", got)
	}
	if got := len(c.CreatorPresets); got != 5 {
		t.Errorf("len(CreatorPresets) = %d, want 5", got)
	}
	if c.Notes == "" {
		t.Error("Notes should not be empty")
	}
}

func TestGet_IndonesianRegions(t *testing.T) {
	want := map[string]string{
		"Indonesia (WIB)":  "UTC+7",
		"Indonesia (WITA)": "UTC+8",
		"Indonesia (WIT)":  "UTC+9",
	}
	for _, a := range Get().Audiences {
		if tz, ok := want[a.Country]; ok {
			if a.Timezone != tz {
				t.Errorf("%s timezone = %q, want %q", a.Country, a.Timezone, tz)
			}
			delete(want, a.Country)
		}
	}
	if len(want) != 0 {
		t.Errorf("missing audiences: %v", want)
	}
}

func TestGet_EntriesComplete(t *testing.T) {
	for i, tz := range Get().Timezones {
		if !strings.HasPrefix(tz.Code, "UTC") || len(tz.Examples) == 0 {
			t.Errorf("timezone[%d] incomplete: %+v", i, tz)
		}
	}
	for i, a := range Get().Audiences {
		if a.Country == "" || a.Language == "" || len(a.Platforms) == 0 || len(a.BestPostTimes) == 0 {
			t.Errorf("audience[%d] incomplete: %+v", i, a)
		}
	}
	for i, p := range Get().CreatorPresets {
		if !strings.HasPrefix(p.Handle, "@") {
			t.Errorf("creator preset[%d] handle %q", i, p.Handle)
		}
	}
}

func TestCatalog_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Get())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"timezones", "audiences", "creator_template", "creator_presets", "notes"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	tmpl := decoded["creator_template"].(map[string]any)
	gaps := tmpl["gaps_opportunities"].(map[string]any)
	if topics, ok := gaps["missing_topics"].([]any); !ok || len(topics) != 0 {
		t.Errorf("missing_topics should encode as an empty list, got %v", gaps["missing_topics"])
	}
	out := tmpl["output_structure"].(map[string]any)
	if _, ok := out["hashtags"].([]any); !ok {
		t.Errorf("output_structure.hashtags should encode as a list, got %v", out["hashtags"])
	}
}

func TestGet_SharedCatalog(t *testing.T) {
	a, b := Get(), Get()
	if a != b {
		t.Fatal("Get() should return the shared catalog")
	}
	if &a.Timezones[0] != &timezones[0] {
		t.Error("catalog timezones should alias the package table")
	}
}

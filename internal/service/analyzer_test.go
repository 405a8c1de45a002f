package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yt-analyzer/internal/checklist"
	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/pkg/textutil"
	"go.uber.org/zap"
)

func newTestAnalyzer(sink *fakeSink) (*Analyzer, *Recorder) {
	logger := zap.NewNop()
	rec := NewRecorder(sink, time.Second, logger)
	evaluator := checklist.NewEvaluator(checklist.DefaultChecks(), logger)
	return NewAnalyzer(evaluator, rec, logger), rec
}

func TestAnalyzer_Example(t *testing.T) {
	sink := newFakeSink()
	a, rec := newTestAnalyzer(sink)

	res, err := a.Analyze(context.Background(), &domain.AnalysisRequest{
		Topic:    "edit video",
		Keywords: []string{"capcut", "editing"},
		Platform: "tutorial",
		Audience: "pemula",
		Region:   "WIB",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	rec.Wait()

	if !strings.HasPrefix(res.SEOTitle, "Capcut: edit video") {
		t.Errorf("SEOTitle = %q", res.SEOTitle)
	}
	if !strings.Contains(res.Angle, "Tutorial langkah-demi-langkah") {
		t.Errorf("Angle = %q", res.Angle)
	}
	if res.Hashtags[0] != "#capcut" {
		t.Errorf("Hashtags = %v, want #capcut first", res.Hashtags)
	}
	if res.PostTime != "19:00 WIB (±1 jam)" {
		t.Errorf("PostTime = %q", res.PostTime)
	}
	if res.Audience == nil || *res.Audience != "pemula" {
		t.Errorf("Audience = %v", res.Audience)
	}
	if res.Niche != nil {
		t.Errorf("Niche = %q, want nil", *res.Niche)
	}
	if res.Format != "tutorial" || res.Platform != "tutorial" {
		t.Errorf("Format/Platform = %q/%q", res.Format, res.Platform)
	}

	passed := 0
	for _, ok := range res.Criteria {
		if ok {
			passed++
		}
	}
	if len(res.Criteria) != 7 || res.Score != checklist.Score(passed, 7) {
		t.Errorf("Score = %d with %d/7 passing", res.Score, passed)
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want 100 for the canonical example (criteria %v)", res.Score, res.Criteria)
	}

	if got := sink.stored(); len(got) != 1 || got[0].SEOTitle != res.SEOTitle {
		t.Errorf("expected one persisted copy, got %d", len(got))
	}
}

func TestAnalyzer_Defaults(t *testing.T) {
	a, rec := newTestAnalyzer(newFakeSink())
	defer rec.Wait()

	res, err := a.Analyze(context.Background(), &domain.AnalysisRequest{Topic: "belajar golang"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Platform != domain.DefaultPlatform || res.Region != domain.DefaultRegion {
		t.Errorf("defaults not applied: platform=%q region=%q", res.Platform, res.Region)
	}
	if res.Keywords == nil {
		t.Error("Keywords should be an empty slice, not nil")
	}
	if strings.Join(res.Hashtags, ",") != "#contentcreator,#contentcreator,#contentcreator" {
		t.Errorf("Hashtags = %v", res.Hashtags)
	}
	if !strings.HasPrefix(res.SEOTitle, "Belajar: belajar golang") {
		t.Errorf("SEOTitle = %q", res.SEOTitle)
	}
	// youtube is not a format, so the tutorial angle is used.
	if !strings.HasPrefix(res.Angle, "Tutorial langkah-demi-langkah") {
		t.Errorf("Angle = %q", res.Angle)
	}
}

func TestAnalyzer_AngleSelection(t *testing.T) {
	a, rec := newTestAnalyzer(newFakeSink())
	defer rec.Wait()

	tests := []struct {
		platform   string
		wantPrefix string
		wantTime   string
	}{
		{platform: "listicle", wantPrefix: "Daftar 7", wantTime: "19:00"},
		{platform: "study", wantPrefix: "Studi kasus", wantTime: "19:00"},
		{platform: "review", wantPrefix: "Review tools", wantTime: "19:00"},
		{platform: "shorts", wantPrefix: "Tutorial langkah", wantTime: "18:30"},
		{platform: "Review", wantPrefix: "Tutorial langkah", wantTime: "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			res, err := a.Analyze(context.Background(), &domain.AnalysisRequest{
				Topic:    "jualan online",
				Platform: tt.platform,
			})
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if !strings.HasPrefix(res.Angle, tt.wantPrefix) {
				t.Errorf("Angle = %q, want prefix %q", res.Angle, tt.wantPrefix)
			}
			if !strings.HasPrefix(res.PostTime, tt.wantTime) {
				t.Errorf("PostTime = %q, want prefix %q", res.PostTime, tt.wantTime)
			}
		})
	}
}

func TestAnalyzer_InvalidTopic(t *testing.T) {
	sink := newFakeSink()
	a, rec := newTestAnalyzer(sink)

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := a.Analyze(context.Background(), &domain.AnalysisRequest{Topic: topic})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("topic %q: error = %v, want ErrInvalidRequest", topic, err)
		}
	}
	rec.Wait()

	if n := len(sink.stored()); n != 0 {
		t.Errorf("rejected requests must not be persisted, got %d", n)
	}
}

func TestAnalyzer_Bounds(t *testing.T) {
	a, rec := newTestAnalyzer(newFakeSink())
	defer rec.Wait()

	topics := []string{"x", "dua kata", strings.Repeat("topik sangat panjang ", 30)}
	for _, topic := range topics {
		res, err := a.Analyze(context.Background(), &domain.AnalysisRequest{
			Topic:    topic,
			Keywords: []string{"satu", "dua", "tiga", "empat", "lima", "enam"},
			Niche:    "kuliner",
			Audience: "mahasiswa",
		})
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if n := textutil.WordCount(res.Hook); n > 16 {
			t.Errorf("hook has %d words", n)
		}
		if n := textutil.Len(res.Description); n > 220 {
			t.Errorf("description has %d chars", n)
		}
		if n := len(res.Hashtags); n < 3 || n > 10 {
			t.Errorf("got %d hashtags", n)
		}
	}
}

func TestAnalyzer_PersistenceDoesNotBlock(t *testing.T) {
	sink := newFakeSink()
	sink.block = make(chan struct{})
	a, rec := newTestAnalyzer(sink)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := a.Analyze(context.Background(), &domain.AnalysisRequest{Topic: "edit video"}); err != nil {
			t.Errorf("Analyze() error = %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Analyze blocked on a slow sink")
	}

	<-sink.started
	close(sink.block)
	rec.Wait()

	if n := len(sink.stored()); n != 1 {
		t.Errorf("expected write to complete after release, got %d", n)
	}
}

func TestAnalyzer_PersistenceErrorIgnored(t *testing.T) {
	sink := newFakeSink()
	sink.err = errors.New("connection refused")
	a, rec := newTestAnalyzer(sink)

	res, err := a.Analyze(context.Background(), &domain.AnalysisRequest{Topic: "edit video"})
	rec.Wait()

	if err != nil || res == nil {
		t.Fatalf("Analyze() = %v, %v; want result despite sink failure", res, err)
	}
}

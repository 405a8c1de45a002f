package service

import (
	"context"
	"sync"

	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/internal/store"
)

// fakeSink records documents in memory. When block is set, CreateDocument
// waits for release or context cancellation.
type fakeSink struct {
	mu      sync.Mutex
	docs    []*domain.AnalysisResult
	err     error
	block   chan struct{}
	started chan struct{}
}

func newFakeSink() *fakeSink {
	return &fakeSink{started: make(chan struct{}, 16)}
}

func (f *fakeSink) CreateDocument(ctx context.Context, collection string, doc *domain.AnalysisResult) error {
	f.started <- struct{}{}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.err != nil {
		return f.err
	}
	if err := store.Validate(doc); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeSink) Recent(ctx context.Context, limit int) ([]domain.StoredAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.StoredAnalysis, 0, len(f.docs))
	for _, d := range f.docs {
		out = append(out, domain.StoredAnalysis{AnalysisResult: *d})
	}
	return out, nil
}

func (f *fakeSink) Ping(ctx context.Context) error { return nil }

func (f *fakeSink) Status(ctx context.Context) store.Status { return store.Status{} }

func (f *fakeSink) Close() error { return nil }

func (f *fakeSink) stored() []*domain.AnalysisResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.AnalysisResult(nil), f.docs...)
}

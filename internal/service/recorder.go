package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/internal/metrics"
	"github.com/yt-analyzer/internal/store"
	"go.uber.org/zap"
)

// Recorder writes results to a Sink in the background. Failures are logged
// and counted; callers are never told about them.
type Recorder struct {
	sink    store.Sink
	timeout time.Duration
	logger  *zap.Logger

	wg sync.WaitGroup
}

// NewRecorder creates a Recorder that gives each write at most timeout.
func NewRecorder(sink store.Sink, timeout time.Duration, logger *zap.Logger) *Recorder {
	return &Recorder{
		sink:    sink,
		timeout: timeout,
		logger:  logger.Named("recorder"),
	}
}

// Record starts a detached write of a copy of result and returns at once.
func (r *Recorder) Record(result *domain.AnalysisResult) {
	doc := result.Clone()
	if doc == nil {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.persist(doc)
	}()
}

func (r *Recorder) persist(doc *domain.AnalysisResult) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("panic while persisting analysis", zap.Any("panic", p))
		}
	}()

	// Detached from the request context so a finished response does not
	// cancel the write.
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	err := r.sink.CreateDocument(ctx, store.CollectionAnalysis, doc)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		r.logger.Debug("analysis not persisted, no datastore configured")
		return
	}
	metrics.ObservePersist(start, err)

	if err != nil {
		r.logger.Warn("failed to persist analysis",
			zap.String("collection", store.CollectionAnalysis),
			zap.Bool("retryable", domain.IsRetryable(err)),
			zap.Error(err),
		)
		return
	}

	r.logger.Debug("analysis persisted", zap.Duration("duration", time.Since(start)))
}

// Wait blocks until all in-flight writes have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

// WaitContext is Wait bounded by ctx. It reports whether all writes finished.
func (r *Recorder) WaitContext(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

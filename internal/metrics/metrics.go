// Package metrics exposes Prometheus instruments for the analyzer.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_analyses_total",
		Help: "Analyses generated, by platform",
	}, []string{"platform"})

	AnalysisScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_score",
		Help:    "Checklist score of generated analyses",
		Buckets: []float64{0, 15, 29, 43, 58, 72, 86, 100},
	})

	CheckFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_check_failures_total",
		Help: "Checklist items that failed, by check",
	}, []string{"check"})

	PersistDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analyzer_persist_duration_seconds",
		Help:    "Time spent writing analyses to the datastore",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	PersistFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_persist_failures_total",
		Help: "Analyses that could not be stored",
	})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_http_requests_total",
		Help: "HTTP requests served, by route and status",
	}, []string{"method", "route", "status"})
)

// MustRegister registers all instruments.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		AnalysesTotal,
		AnalysisScore,
		CheckFailures,
		PersistDuration,
		PersistFailures,
		HTTPRequests,
	)
}

// ObserveAnalysis records one generated analysis.
func ObserveAnalysis(platform string, score int, criteria map[string]bool) {
	if platform == "" {
		platform = "unknown"
	}
	AnalysesTotal.WithLabelValues(platform).Inc()
	AnalysisScore.Observe(float64(score))
	for check, ok := range criteria {
		if !ok {
			CheckFailures.WithLabelValues(check).Inc()
		}
	}
}

// ObservePersist records the duration and outcome of a datastore write.
func ObservePersist(start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		PersistFailures.Inc()
	}
	PersistDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}

// ObserveRequest counts one HTTP request.
func ObserveRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Package store persists analysis results.
//
// The analyzer only needs a document-store style capability: write one
// record into a named collection. Sink abstracts that so the service can
// run with PostgreSQL, or with no datastore at all.
package store

import (
	"context"

	"github.com/yt-analyzer/internal/domain"
)

// CollectionAnalysis is the collection analysis results are written to.
const CollectionAnalysis = "analysis"

// Sink defines the persistence capability used by the analyzer.
type Sink interface {
	// CreateDocument validates and stores one record in collection.
	CreateDocument(ctx context.Context, collection string, doc *domain.AnalysisResult) error

	// Recent returns up to limit stored analyses, newest first.
	Recent(ctx context.Context, limit int) ([]domain.StoredAnalysis, error)

	// Ping verifies the datastore is reachable.
	Ping(ctx context.Context) error

	// Status reports connectivity for diagnostics. It never fails.
	Status(ctx context.Context) Status

	// Close releases the underlying connection.
	Close() error
}

// Status is the diagnostic view of the datastore served by GET /test.
type Status struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

const (
	statusRunning      = "✅ Running"
	statusNotAvailable = "❌ Not Available"
	statusSet          = "✅ Set"
	statusNotSet       = "❌ Not Set"
)

func setOrNot(v string) string {
	if v != "" {
		return statusSet
	}
	return statusNotSet
}

// maxStatusCollections caps the collection list in Status.
const maxStatusCollections = 10

package store

import (
	"context"

	"github.com/yt-analyzer/internal/domain"
	"go.uber.org/zap"
)

// Nop is the Sink used when no datastore is configured.
// Writes are rejected with ErrStoreUnavailable.
type Nop struct {
	databaseURL  string
	databaseName string
	logger       *zap.Logger
}

// NewNop creates a Nop sink. The env values are only echoed in Status.
func NewNop(databaseURL, databaseName string, logger *zap.Logger) *Nop {
	return &Nop{
		databaseURL:  databaseURL,
		databaseName: databaseName,
		logger:       logger.Named("nop_store"),
	}
}

// CreateDocument validates doc and then reports the store as unavailable.
func (n *Nop) CreateDocument(ctx context.Context, collection string, doc *domain.AnalysisResult) error {
	if err := Validate(doc); err != nil {
		return err
	}
	n.logger.Debug("discarding document", zap.String("collection", collection))
	return domain.WrapError("create_document", domain.ErrStoreUnavailable, false)
}

// Recent always fails; nothing is stored.
func (n *Nop) Recent(ctx context.Context, limit int) ([]domain.StoredAnalysis, error) {
	return nil, domain.WrapError("recent", domain.ErrStoreUnavailable, false)
}

// Ping always fails; there is nothing to reach.
func (n *Nop) Ping(ctx context.Context) error {
	return domain.ErrStoreUnavailable
}

// Status reports the datastore as not initialized.
func (n *Nop) Status(ctx context.Context) Status {
	return Status{
		Backend:          statusRunning,
		Database:         "⚠️ Available but not initialized",
		DatabaseURL:      setOrNot(n.databaseURL),
		DatabaseName:     setOrNot(n.databaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
}

// Close is a no-op.
func (n *Nop) Close() error {
	return nil
}

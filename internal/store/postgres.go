package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/domain"
	"github.com/yt-analyzer/pkg/textutil"
)

// PostgresConfig holds connection settings for the PostgreSQL sink.
type PostgresConfig struct {
	URL             string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Postgres stores analysis results in the analyses table.
type Postgres struct {
	db     *sqlx.DB
	name   string
	url    string
	logger *zap.Logger
}

// NewPostgres connects to PostgreSQL and configures the connection pool.
func NewPostgres(cfg PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	// sqlx.Connect opens the pool and pings the server.
	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, domain.WrapError("connect",
			fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err), true)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return newPostgres(db, cfg, logger), nil
}

func newPostgres(db *sqlx.DB, cfg PostgresConfig, logger *zap.Logger) *Postgres {
	return &Postgres{
		db:     db,
		name:   cfg.Name,
		url:    cfg.URL,
		logger: logger.Named("postgres_store"),
	}
}

// analysisRow maps the analyses table.
type analysisRow struct {
	ID          string         `db:"id"`
	Topic       string         `db:"topic"`
	Keywords    pq.StringArray `db:"keywords"`
	Niche       sql.NullString `db:"niche"`
	Audience    sql.NullString `db:"audience"`
	Format      string         `db:"format"`
	Platform    string         `db:"platform"`
	Region      string         `db:"region"`
	SEOTitle    string         `db:"seo_title"`
	Hook        string         `db:"hook"`
	Angle       string         `db:"angle"`
	CTA         string         `db:"cta"`
	Description string         `db:"description"`
	Hashtags    pq.StringArray `db:"hashtags"`
	PostTime    string         `db:"post_time"`
	Score       int            `db:"score"`
	Criteria    []byte         `db:"criteria"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *analysisRow) toDomain() (domain.StoredAnalysis, error) {
	criteria := map[string]bool{}
	if len(r.Criteria) > 0 {
		if err := json.Unmarshal(r.Criteria, &criteria); err != nil {
			return domain.StoredAnalysis{}, fmt.Errorf("decode criteria for %s: %w", r.ID, err)
		}
	}

	return domain.StoredAnalysis{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		AnalysisResult: domain.AnalysisResult{
			Topic:       r.Topic,
			Keywords:    []string(r.Keywords),
			Niche:       nullable(r.Niche),
			Audience:    nullable(r.Audience),
			Format:      r.Format,
			Platform:    r.Platform,
			Region:      r.Region,
			SEOTitle:    r.SEOTitle,
			Hook:        r.Hook,
			Angle:       r.Angle,
			CTA:         r.CTA,
			Description: r.Description,
			Hashtags:    []string(r.Hashtags),
			PostTime:    r.PostTime,
			Score:       r.Score,
			Criteria:    criteria,
		},
	}, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// CreateDocument inserts doc into the table backing collection.
func (p *Postgres) CreateDocument(ctx context.Context, collection string, doc *domain.AnalysisResult) error {
	if collection != CollectionAnalysis {
		return domain.WrapError("create_document",
			fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection), false)
	}
	if err := Validate(doc); err != nil {
		return err
	}

	criteria, err := json.Marshal(doc.Criteria)
	if err != nil {
		return domain.WrapError("encode_criteria", err, false)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO analyses (id, topic, keywords, niche, audience, format, platform, region,
			seo_title, hook, angle, cta, description, hashtags, post_time, score, criteria)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at`

	var createdAt time.Time
	err = p.db.QueryRowContext(ctx, query,
		id, doc.Topic, pq.StringArray(doc.Keywords), nullString(doc.Niche), nullString(doc.Audience),
		doc.Format, doc.Platform, doc.Region,
		doc.SEOTitle, doc.Hook, doc.Angle, doc.CTA, doc.Description,
		pq.StringArray(doc.Hashtags), doc.PostTime, doc.Score, string(criteria),
	).Scan(&createdAt)
	if err != nil {
		return domain.WrapError("insert_analysis", err, true)
	}

	p.logger.Debug("document stored",
		zap.String("collection", collection),
		zap.String("id", id),
		zap.Time("created_at", createdAt),
	)
	return nil
}

// Recent returns up to limit stored analyses, newest first.
func (p *Postgres) Recent(ctx context.Context, limit int) ([]domain.StoredAnalysis, error) {
	var rows []analysisRow
	err := p.db.SelectContext(ctx, &rows,
		`SELECT * FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, domain.WrapError("list_analyses", err, true)
	}

	out := make([]domain.StoredAnalysis, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Ping verifies the database connection is alive.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Status reports connectivity, database name and up to ten tables.
func (p *Postgres) Status(ctx context.Context) Status {
	st := Status{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      setOrNot(p.url),
		DatabaseName:     setOrNot(p.name),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if err := p.db.PingContext(ctx); err != nil {
		st.Database = "❌ Error: " + truncateErr(err)
		return st
	}
	st.Database = "✅ Available"
	st.ConnectionStatus = "Connected"

	var tables []string
	err := p.db.SelectContext(ctx, &tables, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema()
		ORDER BY table_name
		LIMIT $1`, maxStatusCollections)
	if err != nil {
		st.Database = "⚠️ Connected but Error: " + truncateErr(err)
		return st
	}

	st.Collections = tables
	st.Database = "✅ Connected & Working"
	return st
}

// truncateErr keeps diagnostic messages short.
func truncateErr(err error) string {
	return textutil.Truncate(err.Error(), 50)
}

// Close closes the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

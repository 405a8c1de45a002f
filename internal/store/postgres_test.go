package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/yt-analyzer/internal/domain"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := PostgresConfig{URL: "postgres://localhost/analyzer", Name: "analyzer"}
	return newPostgres(sqlx.NewDb(db, "postgres"), cfg, zap.NewNop()), mock
}

var analysisColumns = []string{
	"id", "topic", "keywords", "niche", "audience", "format", "platform", "region",
	"seo_title", "hook", "angle", "cta", "description", "hashtags", "post_time",
	"score", "criteria", "created_at",
}

func TestPostgres_CreateDocument(t *testing.T) {
	p, mock := newMockPostgres(t)

	doc := validDoc()
	doc.Audience = domain.Optional("pemula")
	criteria, _ := json.Marshal(doc.Criteria)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO analyses")).
		WithArgs(
			sqlmock.AnyArg(),
			doc.Topic,
			pq.StringArray(doc.Keywords),
			nil,
			"pemula",
			doc.Format,
			doc.Platform,
			doc.Region,
			doc.SEOTitle,
			doc.Hook,
			doc.Angle,
			doc.CTA,
			doc.Description,
			pq.StringArray(doc.Hashtags),
			doc.PostTime,
			doc.Score,
			string(criteria),
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	if err := p.CreateDocument(context.Background(), CollectionAnalysis, doc); err != nil {
		t.Fatalf("CreateDocument() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgres_CreateDocument_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		doc        func() *domain.AnalysisResult
		wantErr    error
	}{
		{
			name:       "unknown collection",
			collection: "videos",
			doc:        validDoc,
			wantErr:    domain.ErrUnknownCollection,
		},
		{
			name:       "invalid record",
			collection: CollectionAnalysis,
			doc: func() *domain.AnalysisResult {
				d := validDoc()
				d.Hook = ""
				return d
			},
			wantErr: domain.ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mock := newMockPostgres(t)

			err := p.CreateDocument(context.Background(), tt.collection, tt.doc())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateDocument() error = %v, want %v", err, tt.wantErr)
			}
			// No statement may reach the database.
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unexpected database calls: %v", err)
			}
		})
	}
}

func TestPostgres_CreateDocument_QueryError(t *testing.T) {
	p, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO analyses")).
		WillReturnError(errors.New("connection reset"))

	err := p.CreateDocument(context.Background(), CollectionAnalysis, validDoc())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsRetryable(err) {
		t.Errorf("insert failure should be retryable, got %v", err)
	}
}

func TestPostgres_Recent(t *testing.T) {
	p, mock := newMockPostgres(t)

	created := time.Date(2026, 1, 2, 19, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(analysisColumns).
		AddRow("a1", "edit video", []byte(`{capcut,editing}`), nil, []byte("pemula"),
			"tutorial", "tutorial", "WIB",
			"Capcut: edit video | Panduan Lengkap", "hook", "angle", "cta", "description",
			[]byte(`{#capcut,#editing,#contentcreator}`), "19:00 WIB (±1 jam)",
			100, []byte(`{"cta_present":true}`), created)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM analyses ORDER BY created_at DESC LIMIT $1")).
		WithArgs(5).
		WillReturnRows(rows)

	got, err := p.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent() returned %d rows, want 1", len(got))
	}

	a := got[0]
	if a.ID != "a1" || !a.CreatedAt.Equal(created) {
		t.Errorf("ID/CreatedAt = %q/%v", a.ID, a.CreatedAt)
	}
	if len(a.Keywords) != 2 || a.Keywords[1] != "editing" {
		t.Errorf("Keywords = %v", a.Keywords)
	}
	if a.Niche != nil || a.Audience == nil || *a.Audience != "pemula" {
		t.Errorf("Niche/Audience = %v/%v", a.Niche, a.Audience)
	}
	if len(a.Hashtags) != 3 || a.Hashtags[0] != "#capcut" {
		t.Errorf("Hashtags = %v", a.Hashtags)
	}
	if a.Score != 100 || !a.Criteria["cta_present"] {
		t.Errorf("Score/Criteria = %d/%v", a.Score, a.Criteria)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgres_Recent_BadCriteria(t *testing.T) {
	p, mock := newMockPostgres(t)

	rows := sqlmock.NewRows(analysisColumns).
		AddRow("a1", "t", []byte(`{}`), nil, nil, "f", "p", "WIB",
			"s", "h", "a", "c", "d", []byte(`{}`), "19:00", 0, []byte(`not json`), time.Now())
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	if _, err := p.Recent(context.Background(), 1); err == nil {
		t.Error("expected error decoding criteria")
	}
}

func TestPostgres_Status(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		p, mock := newMockPostgres(t)
		mock.ExpectPing()
		mock.ExpectQuery("information_schema.tables").
			WithArgs(maxStatusCollections).
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
				AddRow("analyses").
				AddRow("schema_migrations"))

		st := p.Status(context.Background())
		if st.ConnectionStatus != "Connected" || st.Database != "✅ Connected & Working" {
			t.Errorf("Status = %+v", st)
		}
		if len(st.Collections) != 2 || st.Collections[0] != "analyses" {
			t.Errorf("Collections = %v", st.Collections)
		}
		if st.DatabaseURL != statusSet || st.DatabaseName != statusSet {
			t.Errorf("env flags = %q/%q", st.DatabaseURL, st.DatabaseName)
		}
	})

	t.Run("ping fails", func(t *testing.T) {
		p, mock := newMockPostgres(t)
		mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))

		st := p.Status(context.Background())
		if st.ConnectionStatus != "Not Connected" {
			t.Errorf("ConnectionStatus = %q", st.ConnectionStatus)
		}
		if len(st.Collections) != 0 {
			t.Errorf("Collections = %v, want empty", st.Collections)
		}
	})
}

// Package storage persists summary results to the hosted Postgres
// database (Supabase).
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/lib/pq"

	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

type Store struct {
	db *sql.DB
}

// New connects to the database and makes sure the summaries table
// exists. databaseURL is the DSN without credentials baked in; password
// is injected here so the two can be configured separately.
func New(databaseURL, password string) (*Store, error) {
	dsn, err := buildDSN(databaseURL, password)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("database connected")
	return store, nil
}

func buildDSN(databaseURL, password string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if u.User == nil {
		return "", fmt.Errorf("DATABASE_URL is missing a user")
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		u.User = url.UserPassword(u.User.Username(), password)
	}
	return u.String(), nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS summaries (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		keywords TEXT[] NOT NULL DEFAULT '{}',
		translation TEXT,
		language VARCHAR(50),
		input_text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_summaries_created_at ON summaries(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertSummary writes one result row. translation is NULL when no
// translation was produced.
func (s *Store) InsertSummary(ctx context.Context, r *summary.Result) error {
	query := `
		INSERT INTO summaries (title, summary, keywords, translation, language, input_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		r.Title, r.Summary, pq.Array(r.Keywords), r.Translation, r.Language, r.InputText, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}
	return nil
}

// Ping reports database reachability for the health endpoint.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

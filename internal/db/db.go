// Package db provides PostgreSQL access for candidate profiles and the
// opportunity catalog. It assembles the plain records the matching engine
// consumes; match results themselves are never persisted.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name           TEXT NOT NULL,
			email          TEXT NOT NULL UNIQUE,
			field_of_study TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_skills (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			name         TEXT NOT NULL,
			level        INT NOT NULL CHECK (level BETWEEN 1 AND 5),
			verified     BOOLEAN NOT NULL DEFAULT FALSE,
			position     INT NOT NULL,
			UNIQUE (candidate_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS opportunities (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title           TEXT NOT NULL,
			company         TEXT NOT NULL DEFAULT '',
			location        TEXT NOT NULL DEFAULT '',
			type            TEXT NOT NULL DEFAULT '',
			salary          TEXT NOT NULL DEFAULT '',
			url             TEXT NOT NULL DEFAULT '',
			description     TEXT NOT NULL DEFAULT '',
			deadline        TIMESTAMPTZ,
			required_skills TEXT[] NOT NULL DEFAULT '{}',
			sector          TEXT,
			department      TEXT,
			active          BOOLEAN NOT NULL DEFAULT TRUE,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_active
			ON opportunities (active, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_candidate_skills_candidate
			ON candidate_skills (candidate_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

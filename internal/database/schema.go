package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cvs (
		cv_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		total_experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
		highest_education TEXT NOT NULL DEFAULT '',
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		job_id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company_name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'manual',
		payload JSONB NOT NULL,
		posted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS match_results (
		id UUID PRIMARY KEY,
		cv_id TEXT NOT NULL REFERENCES cvs(cv_id) ON DELETE CASCADE,
		job_id TEXT NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
		overall_score DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		payload JSONB NOT NULL,
		matched_at TIMESTAMPTZ NOT NULL,
		UNIQUE (cv_id, job_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_results_cv_score
		ON match_results (cv_id, overall_score DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)`,
}

// EnsureSchema creates the service tables when they do not exist yet.
// Statements are idempotent, so concurrent instances racing at startup
// is harmless.
func EnsureSchema(ctx context.Context, db DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

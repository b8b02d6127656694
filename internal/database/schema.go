package database

import (
	"context"
	"fmt"
)

// schemaStatements bring an empty database up to the current shape. Applications
// cascade with their job; the candidate lookup goes through LOWER(email), so that
// column gets a functional index instead of a foreign key to users.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('candidate', 'recruiter', 'admin')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT,
		job_type TEXT,
		salary TEXT,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		posted_by_user_id UUID REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		resume_url TEXT,
		cover_letter TEXT,
		applied_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_email_lower ON applications (LOWER(email))`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_posted_by ON jobs (posted_by_user_id)`,
}

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

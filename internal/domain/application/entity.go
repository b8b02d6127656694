package application

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate's submission against one job. Applicants need not
// be registered users, so the link back to a candidate account is the email
// string, matched case-insensitively. That match is lossy if the account's
// email later changes.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	Name        string
	Email       string
	ResumeURL   string
	CoverLetter string
	AppliedAt   time.Time
}

// WithJob is the joined projection used by every listing view.
type WithJob struct {
	Application

	JobTitle    string
	Company     string
	JobLocation string
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/application"
)

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	AppliedAt string    `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{ID: a.ID, JobID: a.JobID, AppliedAt: a.AppliedAt.UTC().Format(time.RFC3339)}
}

// ApplicationWithJobResponse is the joined projection every listing view
// renders from.
type ApplicationWithJobResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ResumeURL   string    `json:"resume_url"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   string    `json:"applied_at"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	JobLocation string    `json:"job_location"`
}

func NewApplicationWithJobListResponse(items []application.WithJob) []ApplicationWithJobResponse {
	out := make([]ApplicationWithJobResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicationWithJobResponse{
			ID:          a.ID,
			JobID:       a.JobID,
			Name:        a.Name,
			Email:       a.Email,
			ResumeURL:   a.ResumeURL,
			CoverLetter: a.CoverLetter,
			AppliedAt:   a.AppliedAt.UTC().Format(time.RFC3339),
			JobTitle:    a.JobTitle,
			Company:     a.Company,
			JobLocation: a.JobLocation,
		})
	}
	return out
}

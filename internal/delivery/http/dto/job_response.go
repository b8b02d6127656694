package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/job"
)

type JobResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	JobType     string     `json:"job_type"`
	Salary      string     `json:"salary"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	PostedBy    *uuid.UUID `json:"posted_by_user_id,omitempty"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		JobType:     j.JobType,
		Salary:      j.Salary,
		Description: j.Description,
		CreatedAt:   j.CreatedAt.UTC().Format(time.RFC3339),
		PostedBy:    j.PostedBy,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

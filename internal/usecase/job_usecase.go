package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	JobType     string
	Salary      string
	Description string
}

type JobUsecase interface {
	// List returns every job, newest first. Public, no auth.
	List(ctx context.Context) ([]job.Job, error)
	Create(ctx context.Context, actor user.User, in CreateJobInput) (job.Job, error)
}

type Jobs struct {
	jobs job.Repository
}

func NewJobUsecase(jobs job.Repository) *Jobs {
	return &Jobs{jobs: jobs}
}

func (u *Jobs) List(ctx context.Context) ([]job.Job, error) {
	out, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Create persists a posting owned by the acting user. The route is already
// behind the role gate; the check here keeps the rule with the operation
// rather than only in the HTTP wiring.
func (u *Jobs) Create(ctx context.Context, actor user.User, in CreateJobInput) (job.Job, error) {
	if !actor.Role.CanPostJobs() {
		return job.Job{}, ErrForbidden
	}

	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	if title == "" {
		return job.Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if company == "" {
		return job.Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}

	// free text is trimmed only; encoding on output is the view layer's job
	ownerID := actor.ID
	j := job.Job{
		ID:          uuid.New(),
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(in.Location),
		JobType:     strings.TrimSpace(in.JobType),
		Salary:      strings.TrimSpace(in.Salary),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now().UTC(),
		PostedBy:    &ownerID,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

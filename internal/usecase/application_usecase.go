package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type ApplyInput struct {
	Name        string
	Email       string
	ResumeURL   string
	CoverLetter string
}

type ApplicationUsecase interface {
	// Apply is public; applicants need not hold an account. The same email may
	// apply to the same job any number of times.
	Apply(ctx context.Context, jobID uuid.UUID, in ApplyInput) (application.Application, error)
	ListForAdmin(ctx context.Context, actor user.User) ([]application.WithJob, error)
	ListForCandidate(ctx context.Context, actor user.User) ([]application.WithJob, error)
	ListForRecruiter(ctx context.Context, actor user.User) ([]application.WithJob, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository) *Applications {
	return &Applications{applications: applications, jobs: jobs}
}

func (u *Applications) Apply(ctx context.Context, jobID uuid.UUID, in ApplyInput) (application.Application, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return application.Application{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return application.Application{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, ErrJobNotFound
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		Name:        name,
		Email:       email,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		AppliedAt:   time.Now().UTC(),
	}

	if err := u.applications.Create(ctx, a); err != nil {
		return application.Application{}, ErrInternal
	}
	return a, nil
}

func (u *Applications) ListForAdmin(ctx context.Context, actor user.User) ([]application.WithJob, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	out, err := u.applications.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ListForCandidate matches by the account's email, case-insensitively. An
// application submitted before registration still shows up; one submitted
// under a different address does not.
func (u *Applications) ListForCandidate(ctx context.Context, actor user.User) ([]application.WithJob, error) {
	if actor.Role != user.RoleCandidate {
		return nil, ErrForbidden
	}
	out, err := u.applications.ListByApplicantEmail(ctx, actor.Email)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ListForRecruiter is keyed by job ownership. Jobs predating owner tracking
// have no owner id and are visible to nobody here; the admin view still
// covers them.
func (u *Applications) ListForRecruiter(ctx context.Context, actor user.User) ([]application.WithJob, error) {
	if !actor.Role.CanPostJobs() {
		return nil, ErrForbidden
	}
	out, err := u.applications.ListByPosterID(ctx, actor.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

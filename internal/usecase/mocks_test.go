package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *memUserRepo) Create(_ context.Context, u user.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return errors.New("duplicate key")
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

type memJobRepo struct {
	jobs []job.Job
	err  error
}

func (r *memJobRepo) Create(_ context.Context, j job.Job) error {
	if r.err != nil {
		return r.err
	}
	r.jobs = append(r.jobs, j)
	return nil
}

func (r *memJobRepo) List(_ context.Context) ([]job.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]job.Job, len(r.jobs))
	copy(out, r.jobs)
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *memJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, j := range r.jobs {
		if j.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *memJobRepo) byID(id uuid.UUID) (job.Job, bool) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return job.Job{}, false
}

type memApplicationRepo struct {
	apps []application.Application
	jobs *memJobRepo
	err  error
}

func (r *memApplicationRepo) Create(_ context.Context, a application.Application) error {
	if r.err != nil {
		return r.err
	}
	r.apps = append(r.apps, a)
	return nil
}

func (r *memApplicationRepo) ListAll(_ context.Context) ([]application.WithJob, error) {
	return r.list(func(application.Application, job.Job) bool { return true })
}

func (r *memApplicationRepo) ListByApplicantEmail(_ context.Context, email string) ([]application.WithJob, error) {
	return r.list(func(a application.Application, _ job.Job) bool {
		return strings.EqualFold(a.Email, email)
	})
}

func (r *memApplicationRepo) ListByPosterID(_ context.Context, posterID uuid.UUID) ([]application.WithJob, error) {
	return r.list(func(_ application.Application, j job.Job) bool {
		return j.PostedBy != nil && *j.PostedBy == posterID
	})
}

func (r *memApplicationRepo) list(keep func(application.Application, job.Job) bool) ([]application.WithJob, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]application.WithJob, 0)
	for _, a := range r.apps {
		j, ok := r.jobs.byID(a.JobID)
		if !ok || !keep(a, j) {
			continue
		}
		out = append(out, application.WithJob{
			Application: a,
			JobTitle:    j.Title,
			Company:     j.Company,
			JobLocation: j.Location,
		})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].AppliedAt.After(out[k].AppliedAt) })
	return out, nil
}

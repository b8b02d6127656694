package postgres

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationWithJobSelect = `
SELECT a.id, a.job_id, a.name, a.email, COALESCE(a.resume_url, ''), COALESCE(a.cover_letter, ''),
       a.applied_at, j.title, j.company, COALESCE(j.location, '')
FROM applications a
JOIN jobs j ON j.id = a.job_id`

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, name, email, resume_url, cover_letter, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.Name, a.Email, a.ResumeURL, a.CoverLetter, a.AppliedAt,
	)
	return err
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx, applicationWithJobSelect+`
ORDER BY a.applied_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectWithJob(rows)
}

func (r *ApplicationRepository) ListByApplicantEmail(ctx context.Context, email string) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx, applicationWithJobSelect+`
WHERE LOWER(a.email) = LOWER($1)
ORDER BY a.applied_at DESC`, email)
	if err != nil {
		return nil, err
	}
	return collectWithJob(rows)
}

func (r *ApplicationRepository) ListByPosterID(ctx context.Context, posterID uuid.UUID) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx, applicationWithJobSelect+`
WHERE j.posted_by_user_id = $1
ORDER BY a.applied_at DESC`, posterID)
	if err != nil {
		return nil, err
	}
	return collectWithJob(rows)
}

func collectWithJob(rows database.Rows) ([]application.WithJob, error) {
	defer rows.Close()

	out := make([]application.WithJob, 0)
	for rows.Next() {
		var a application.WithJob
		if err := rows.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.ResumeURL, &a.CoverLetter,
			&a.AppliedAt, &a.JobTitle, &a.Company, &a.JobLocation); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

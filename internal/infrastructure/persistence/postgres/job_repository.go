package postgres

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	var postedBy uuid.NullUUID
	if j.PostedBy != nil {
		postedBy = uuid.NullUUID{UUID: *j.PostedBy, Valid: true}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, job_type, salary, description, created_at, posted_by_user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		j.ID, j.Title, j.Company, j.Location, j.JobType, j.Salary, j.Description, j.CreatedAt, postedBy,
	)
	return err
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, COALESCE(location, ''), COALESCE(job_type, ''),
		        COALESCE(salary, ''), COALESCE(description, ''), created_at, posted_by_user_id
		 FROM jobs
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		var postedBy uuid.NullUUID
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.JobType,
			&j.Salary, &j.Description, &j.CreatedAt, &postedBy); err != nil {
			return nil, err
		}
		if postedBy.Valid {
			id := postedBy.UUID
			j.PostedBy = &id
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *JobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

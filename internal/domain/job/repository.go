package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	// List returns every job, newest first.
	List(ctx context.Context) ([]Job, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

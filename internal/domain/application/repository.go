package application

import (
	"context"

	"github.com/google/uuid"
)

// Repository lists always return the joined projection, newest first.
type Repository interface {
	Create(ctx context.Context, a Application) error
	ListAll(ctx context.Context) ([]WithJob, error)
	ListByApplicantEmail(ctx context.Context, email string) ([]WithJob, error)
	ListByPosterID(ctx context.Context, posterID uuid.UUID) ([]WithJob, error)
}

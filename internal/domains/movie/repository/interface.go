package repository

import (
	"context"

	"github.com/google/uuid"

	"movies-backend/internal/domains/movie/model"
)

// Repository is the movie persistence port. Read operations that take
// a userID merge that user's own rating into the returned movies.
type Repository interface {
	Create(ctx context.Context, movie model.Movie) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*model.Movie, error)
	GetBySlug(ctx context.Context, slug string, userID *uuid.UUID) (*model.Movie, error)
	GetAll(ctx context.Context, options model.ListOptions) ([]model.Movie, error)
	Update(ctx context.Context, movie model.Movie) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	GetCount(ctx context.Context, title string, year *int) (int, error)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"movies-backend/internal/domains/movie/model"
)

// ServiceInterface is the movie business logic consumed by the HTTP
// layer. Lookups return (nil, nil) when the movie does not exist;
// absence is not an error.
type ServiceInterface interface {
	Create(ctx context.Context, movie *model.Movie) error
	GetByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*model.Movie, error)
	GetBySlug(ctx context.Context, slug string, userID *uuid.UUID) (*model.Movie, error)
	GetAll(ctx context.Context, options model.ListOptions) ([]model.Movie, int, error)
	Update(ctx context.Context, movie *model.Movie, userID *uuid.UUID) (*model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetCount(ctx context.Context, title string, year *int) (int, error)
}

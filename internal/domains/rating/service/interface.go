package service

import (
	"context"

	"github.com/google/uuid"

	"movies-backend/internal/domains/rating/model"
)

// ServiceInterface is the rating business logic. RateMovie returns
// false without writing when the movie does not exist.
type ServiceInterface interface {
	RateMovie(ctx context.Context, movieID uuid.UUID, rating int, userID uuid.UUID) (bool, error)
	DeleteRating(ctx context.Context, movieID, userID uuid.UUID) (bool, error)
	GetRatingsForUser(ctx context.Context, userID uuid.UUID) ([]model.MovieRating, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"movies-backend/internal/domains/rating/model"
)

// Repository is the rating persistence port. Averages are one-decimal
// means over all ratings for a movie; nil means no ratings exist, which
// callers must keep distinct from a rating of zero.
type Repository interface {
	// RateMovie upserts the (movie, user) rating. Last writer wins on
	// concurrent submissions; conflict resolution happens in the store.
	RateMovie(ctx context.Context, movieID uuid.UUID, rating int, userID uuid.UUID) (bool, error)

	// GetRating returns the average rating for a movie.
	GetRating(ctx context.Context, movieID uuid.UUID) (*float64, error)

	// GetRatingWithUser returns the average and the user's own rating,
	// both derived from the same read.
	GetRatingWithUser(ctx context.Context, movieID, userID uuid.UUID) (*float64, *int, error)

	DeleteRating(ctx context.Context, movieID, userID uuid.UUID) (bool, error)

	GetRatingsForUser(ctx context.Context, userID uuid.UUID) ([]model.MovieRating, error)
}

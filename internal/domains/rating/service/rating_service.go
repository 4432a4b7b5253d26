package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	movierepo "movies-backend/internal/domains/movie/repository"
	"movies-backend/internal/domains/rating/model"
	"movies-backend/internal/domains/rating/repository"
	"movies-backend/internal/shared/validation"
)

// RatingService enforces rating bounds and movie existence before
// delegating to the rating repository.
type RatingService struct {
	ratings repository.Repository
	movies  movierepo.Repository
}

func NewService(ratings repository.Repository, movies movierepo.Repository) ServiceInterface {
	return &RatingService{
		ratings: ratings,
		movies:  movies,
	}
}

// RateMovie upserts the user's rating. Out-of-bounds values fail
// validation with no write; a missing movie returns false, not an
// error. The existence check happens here so the caller gets a clean
// not-found instead of a storage failure.
func (s *RatingService) RateMovie(ctx context.Context, movieID uuid.UUID, rating int, userID uuid.UUID) (bool, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return false, validation.NewError(validation.Violation{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d", model.MinRating, model.MaxRating),
		})
	}

	exists, err := s.movies.ExistsByID(ctx, movieID)
	if err != nil {
		return false, fmt.Errorf("movie exists: %w", err)
	}
	if !exists {
		return false, nil
	}

	return s.ratings.RateMovie(ctx, movieID, rating, userID)
}

// DeleteRating removes the user's rating; the bool reports whether a
// row was removed. Deleting a rating that never existed is not an error.
func (s *RatingService) DeleteRating(ctx context.Context, movieID, userID uuid.UUID) (bool, error) {
	return s.ratings.DeleteRating(ctx, movieID, userID)
}

// GetRatingsForUser returns the user's ratings; empty slice when the
// user has none.
func (s *RatingService) GetRatingsForUser(ctx context.Context, userID uuid.UUID) ([]model.MovieRating, error) {
	return s.ratings.GetRatingsForUser(ctx, userID)
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"movies-backend/internal/domains/movie/model"
	movierepo "movies-backend/internal/domains/movie/repository"
	ratingrepo "movies-backend/internal/domains/rating/repository"
)

// MovieService orchestrates validation, persistence and rating
// enrichment. It is stateless and request-scoped; storage conflicts are
// resolved by the database, never by in-process locks.
type MovieService struct {
	movies    movierepo.Repository
	ratings   ratingrepo.Repository
	validator *MovieValidator
}

func NewService(movies movierepo.Repository, ratings ratingrepo.Repository, validator *MovieValidator) ServiceInterface {
	return &MovieService{
		movies:    movies,
		ratings:   ratings,
		validator: validator,
	}
}

// Create validates the movie and persists it. Validation failures are
// reported before any write is attempted.
func (s *MovieService) Create(ctx context.Context, movie *model.Movie) error {
	if err := s.validator.ValidateMovie(ctx, movie); err != nil {
		return err
	}

	created, err := s.movies.Create(ctx, *movie)
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	if !created {
		return model.ErrMovieNotCreated
	}
	return nil
}

func (s *MovieService) GetByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*model.Movie, error) {
	return s.movies.GetByID(ctx, id, userID)
}

func (s *MovieService) GetBySlug(ctx context.Context, slug string, userID *uuid.UUID) (*model.Movie, error) {
	return s.movies.GetBySlug(ctx, slug, userID)
}

// GetAll validates the options, lists the matching page and fetches the
// total count with the same title/year predicate so pagination metadata
// stays consistent with the listing.
func (s *MovieService) GetAll(ctx context.Context, options model.ListOptions) ([]model.Movie, int, error) {
	if err := s.validator.ValidateListOptions(options); err != nil {
		return nil, 0, err
	}

	movies, err := s.movies.GetAll(ctx, options)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	count, err := s.movies.GetCount(ctx, options.Title, options.Year)
	if err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	return movies, count, nil
}

// Update replaces the movie wholesale, then re-derives the computed
// rating fields onto the result so the caller sees post-write state
// rather than whatever stale values it supplied.
func (s *MovieService) Update(ctx context.Context, movie *model.Movie, userID *uuid.UUID) (*model.Movie, error) {
	if err := s.validator.ValidateMovie(ctx, movie); err != nil {
		return nil, err
	}

	exists, err := s.movies.ExistsByID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("movie exists: %w", err)
	}
	if !exists {
		return nil, nil
	}

	if _, err := s.movies.Update(ctx, *movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	if userID == nil {
		rating, err := s.ratings.GetRating(ctx, movie.ID)
		if err != nil {
			return nil, fmt.Errorf("refresh rating: %w", err)
		}
		movie.Rating = rating
		return movie, nil
	}

	rating, userRating, err := s.ratings.GetRatingWithUser(ctx, movie.ID, *userID)
	if err != nil {
		return nil, fmt.Errorf("refresh ratings: %w", err)
	}
	movie.Rating = rating
	movie.UserRating = userRating

	return movie, nil
}

// Delete removes the movie; deleting an id that does not exist is not
// an error, the bool reports whether a row was actually removed.
func (s *MovieService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.movies.DeleteByID(ctx, id)
}

func (s *MovieService) GetCount(ctx context.Context, title string, year *int) (int, error) {
	return s.movies.GetCount(ctx, title, year)
}

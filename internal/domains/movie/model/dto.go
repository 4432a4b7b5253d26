package model

import (
	"github.com/google/uuid"

	"movies-backend/internal/shared/utils"
)

// CreateMovieRequest is the write payload for creating a movie.
type CreateMovieRequest struct {
	Title         string   `json:"title"`
	YearOfRelease int      `json:"yearOfRelease"`
	Genres        []string `json:"genres"`
}

// ToMovie maps the request onto a movie with the given identity,
// deriving the slug from the title.
func (r CreateMovieRequest) ToMovie(id uuid.UUID) Movie {
	return Movie{
		ID:            id,
		Title:         r.Title,
		Slug:          utils.GenerateSlug(r.Title),
		YearOfRelease: r.YearOfRelease,
		Genres:        r.Genres,
	}
}

// UpdateMovieRequest is the full-replace payload for updating a movie.
// Updates are not partial patches; every field is taken from the body.
type UpdateMovieRequest struct {
	Title         string   `json:"title"`
	YearOfRelease int      `json:"yearOfRelease"`
	Genres        []string `json:"genres"`
}

func (r UpdateMovieRequest) ToMovie(id uuid.UUID) Movie {
	return Movie{
		ID:            id,
		Title:         r.Title,
		Slug:          utils.GenerateSlug(r.Title),
		YearOfRelease: r.YearOfRelease,
		Genres:        r.Genres,
	}
}

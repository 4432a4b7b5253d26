package model

import (
	"github.com/google/uuid"
)

// Rating bounds. A rating is an integer from 1 to 5 inclusive; a second
// submission by the same user for the same movie overwrites the first.
const (
	MinRating = 1
	MaxRating = 5
)

// MovieRating is one user's rating together with the movie it refers to.
type MovieRating struct {
	MovieID uuid.UUID `json:"movieId"`
	Slug    string    `json:"slug"`
	Rating  int       `json:"rating"`
}

// RateMovieRequest is the write payload for rating a movie.
type RateMovieRequest struct {
	Rating int `json:"rating"`
}

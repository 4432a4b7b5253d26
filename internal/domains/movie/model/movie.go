package model

import (
	"github.com/google/uuid"
)

// Movie is the catalog entity. Rating and UserRating are computed from
// the ratings table, never stored on the movie row: Rating is the
// one-decimal average across all users (nil when nobody rated yet) and
// UserRating is the acting user's own score (nil for anonymous reads).
type Movie struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	YearOfRelease int       `json:"yearOfRelease"`
	Genres        []string  `json:"genres"`
	Rating        *float64  `json:"rating,omitempty"`
	UserRating    *int      `json:"userRating,omitempty"`
}

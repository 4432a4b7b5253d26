package model

import "errors"

var (
	// ErrMovieNotCreated signals that the insert affected no rows.
	ErrMovieNotCreated = errors.New("movie was not created")
)

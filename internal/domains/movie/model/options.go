package model

import (
	"fmt"

	"github.com/google/uuid"
)

// SortDirection controls list ordering.
type SortDirection int

const (
	SortUnsorted SortDirection = iota
	SortAscending
	SortDescending
)

// ListOptions captures the filter, sort and paging parameters for
// listing movies. UserID, when set, is the acting user whose own
// ratings should be merged into the results.
type ListOptions struct {
	Title         string        `json:"title"`
	Year          *int          `json:"year"`
	SortField     string        `json:"sortBy"`
	SortDirection SortDirection `json:"sortDirection"`
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	UserID        *uuid.UUID    `json:"-"`
}

// WithUser attaches the acting user for per-user rating enrichment.
func (o ListOptions) WithUser(userID *uuid.UUID) ListOptions {
	o.UserID = userID
	return o
}

// CacheKey builds a deterministic cache key covering every parameter
// that affects the listing response, the acting user included.
func (o ListOptions) CacheKey() string {
	year := ""
	if o.Year != nil {
		year = fmt.Sprintf("%d", *o.Year)
	}
	user := ""
	if o.UserID != nil {
		user = o.UserID.String()
	}
	return fmt.Sprintf("movies:list:t=%s:y=%s:s=%s:d=%d:p=%d:ps=%d:u=%s",
		o.Title, year, o.SortField, o.SortDirection, o.Page, o.PageSize, user)
}

package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToMovieDerivesSlug(t *testing.T) {
	id := uuid.New()

	movie := CreateMovieRequest{
		Title:         "The Dark Knight",
		YearOfRelease: 2008,
		Genres:        []string{"Action"},
	}.ToMovie(id)

	assert.Equal(t, id, movie.ID)
	assert.Equal(t, "the-dark-knight", movie.Slug)

	renamed := UpdateMovieRequest{
		Title:         "The Dark Knight Rises",
		YearOfRelease: 2012,
		Genres:        []string{"Action"},
	}.ToMovie(id)

	assert.Equal(t, "the-dark-knight-rises", renamed.Slug)
}

func TestListOptionsCacheKey(t *testing.T) {
	year := 2010
	u1, u2 := uuid.New(), uuid.New()

	base := ListOptions{Title: "incep", Year: &year, SortField: "title", SortDirection: SortAscending, Page: 1, PageSize: 10}

	assert.Equal(t, base.CacheKey(), base.CacheKey())

	variations := []ListOptions{
		{Title: "tenet", Year: &year, SortField: "title", SortDirection: SortAscending, Page: 1, PageSize: 10},
		{Title: "incep", SortField: "title", SortDirection: SortAscending, Page: 1, PageSize: 10},
		{Title: "incep", Year: &year, SortField: "title", SortDirection: SortDescending, Page: 1, PageSize: 10},
		{Title: "incep", Year: &year, SortField: "title", SortDirection: SortAscending, Page: 2, PageSize: 10},
		base.WithUser(&u1),
		base.WithUser(&u2),
	}

	seen := map[string]struct{}{base.CacheKey(): {}}
	for _, options := range variations {
		key := options.CacheKey()
		_, dup := seen[key]
		assert.False(t, dup, "duplicate cache key %q", key)
		seen[key] = struct{}{}
	}
}

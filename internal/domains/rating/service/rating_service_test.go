package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	moviemodel "movies-backend/internal/domains/movie/model"
	"movies-backend/internal/domains/rating/model"
	"movies-backend/internal/shared/validation"
)

type fakeRatingRepo struct {
	// movieID -> userID -> rating
	rows  map[uuid.UUID]map[uuid.UUID]int
	slugs map[uuid.UUID]string
	calls int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{
		rows:  map[uuid.UUID]map[uuid.UUID]int{},
		slugs: map[uuid.UUID]string{},
	}
}

func (f *fakeRatingRepo) RateMovie(_ context.Context, movieID uuid.UUID, rating int, userID uuid.UUID) (bool, error) {
	f.calls++
	if f.rows[movieID] == nil {
		f.rows[movieID] = map[uuid.UUID]int{}
	}
	f.rows[movieID][userID] = rating
	return true, nil
}

func (f *fakeRatingRepo) GetRating(_ context.Context, movieID uuid.UUID) (*float64, error) {
	userRatings := f.rows[movieID]
	if len(userRatings) == 0 {
		return nil, nil
	}
	sum := 0
	for _, r := range userRatings {
		sum += r
	}
	avg := float64(sum) / float64(len(userRatings))
	return &avg, nil
}

func (f *fakeRatingRepo) GetRatingWithUser(ctx context.Context, movieID, userID uuid.UUID) (*float64, *int, error) {
	avg, err := f.GetRating(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}
	var userRating *int
	if r, ok := f.rows[movieID][userID]; ok {
		userRating = &r
	}
	return avg, userRating, nil
}

func (f *fakeRatingRepo) DeleteRating(_ context.Context, movieID, userID uuid.UUID) (bool, error) {
	if _, ok := f.rows[movieID][userID]; !ok {
		return false, nil
	}
	delete(f.rows[movieID], userID)
	return true, nil
}

func (f *fakeRatingRepo) GetRatingsForUser(_ context.Context, userID uuid.UUID) ([]model.MovieRating, error) {
	result := make([]model.MovieRating, 0)
	for movieID, userRatings := range f.rows {
		if rating, ok := userRatings[userID]; ok {
			result = append(result, model.MovieRating{
				MovieID: movieID,
				Slug:    f.slugs[movieID],
				Rating:  rating,
			})
		}
	}
	return result, nil
}

// fakeMovieRepo only needs to answer existence checks here.
type fakeMovieRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeMovieRepo) Create(context.Context, moviemodel.Movie) (bool, error) {
	return false, nil
}

func (f *fakeMovieRepo) GetByID(context.Context, uuid.UUID, *uuid.UUID) (*moviemodel.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) GetBySlug(context.Context, string, *uuid.UUID) (*moviemodel.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) GetAll(context.Context, moviemodel.ListOptions) ([]moviemodel.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) Update(context.Context, moviemodel.Movie) (bool, error) {
	return false, nil
}

func (f *fakeMovieRepo) DeleteByID(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeMovieRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func (f *fakeMovieRepo) GetCount(context.Context, string, *int) (int, error) {
	return 0, nil
}

func newTestService(t *testing.T) (ServiceInterface, *fakeRatingRepo, uuid.UUID) {
	t.Helper()
	ratings := newFakeRatingRepo()
	movieID := uuid.New()
	ratings.slugs[movieID] = "inception"
	movies := &fakeMovieRepo{existing: map[uuid.UUID]bool{movieID: true}}
	return NewService(ratings, movies), ratings, movieID
}

func TestRateMovieRejectsOutOfBounds(t *testing.T) {
	svc, ratings, movieID := newTestService(t)
	userID := uuid.New()

	for _, rating := range []int{-1, 0, 6, 100} {
		ok, err := svc.RateMovie(context.Background(), movieID, rating, userID)

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr, "rating %d", rating)
		assert.Equal(t, "rating", vErr.Violations[0].Field)
		assert.False(t, ok)
	}

	// Rejected ratings never reach the repository.
	assert.Zero(t, ratings.calls)
}

func TestRateMovieAcceptsBounds(t *testing.T) {
	svc, _, movieID := newTestService(t)
	userID := uuid.New()

	for _, rating := range []int{model.MinRating, model.MaxRating} {
		ok, err := svc.RateMovie(context.Background(), movieID, rating, userID)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRateMovieUnknownMovie(t *testing.T) {
	svc, ratings, _ := newTestService(t)

	ok, err := svc.RateMovie(context.Background(), uuid.New(), 4, uuid.New())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, ratings.calls)
}

func TestRateMovieReplacesPreviousRating(t *testing.T) {
	svc, ratings, movieID := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.RateMovie(ctx, movieID, 2, userID)
	require.NoError(t, err)
	_, err = svc.RateMovie(ctx, movieID, 5, userID)
	require.NoError(t, err)

	require.Len(t, ratings.rows[movieID], 1)
	assert.Equal(t, 5, ratings.rows[movieID][userID])
}

func TestDeleteRatingMissing(t *testing.T) {
	svc, _, movieID := newTestService(t)

	deleted, err := svc.DeleteRating(context.Background(), movieID, uuid.New())

	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteRatingRemovesOnlyOwnRow(t *testing.T) {
	svc, ratings, movieID := newTestService(t)
	ctx := context.Background()
	u1, u2 := uuid.New(), uuid.New()

	_, err := svc.RateMovie(ctx, movieID, 5, u1)
	require.NoError(t, err)
	_, err = svc.RateMovie(ctx, movieID, 3, u2)
	require.NoError(t, err)

	deleted, err := svc.DeleteRating(ctx, movieID, u1)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Len(t, ratings.rows[movieID], 1)
	assert.Equal(t, 3, ratings.rows[movieID][u2])
}

func TestGetRatingsForUser(t *testing.T) {
	svc, _, movieID := newTestService(t)
	userID := uuid.New()
	ctx := context.Background()

	ratings, err := svc.GetRatingsForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
	assert.NotNil(t, ratings)

	_, err = svc.RateMovie(ctx, movieID, 4, userID)
	require.NoError(t, err)

	ratings, err = svc.GetRatingsForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, model.MovieRating{MovieID: movieID, Slug: "inception", Rating: 4}, ratings[0])
}

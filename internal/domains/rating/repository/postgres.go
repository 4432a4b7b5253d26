package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"movies-backend/internal/domains/rating/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) RateMovie(ctx context.Context, movieID uuid.UUID, rating int, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		insert into ratings (userid, movieid, rating)
		values ($1, $2, $3)
		on conflict (userid, movieid) do update set rating = excluded.rating
	`, userID, movieID, rating)
	if err != nil {
		return false, fmt.Errorf("upsert rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) GetRating(ctx context.Context, movieID uuid.UUID) (*float64, error) {
	var rating *float64
	err := r.pool.QueryRow(ctx, `
		select round(avg(rating), 1)::float8
		from ratings
		where movieid = $1
	`, movieID).Scan(&rating)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	return rating, nil
}

func (r *postgresRepository) GetRatingWithUser(ctx context.Context, movieID, userID uuid.UUID) (*float64, *int, error) {
	var rating *float64
	var userRating *int
	err := r.pool.QueryRow(ctx, `
		select round(avg(rating), 1)::float8,
		       (select rating
		        from ratings
		        where movieid = $1 and userid = $2
		        limit 1)
		from ratings
		where movieid = $1
	`, movieID, userID).Scan(&rating, &userRating)
	if err != nil {
		return nil, nil, fmt.Errorf("average and user rating: %w", err)
	}
	return rating, userRating, nil
}

func (r *postgresRepository) DeleteRating(ctx context.Context, movieID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		delete from ratings
		where movieid = $1 and userid = $2
	`, movieID, userID)
	if err != nil {
		return false, fmt.Errorf("delete rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) GetRatingsForUser(ctx context.Context, userID uuid.UUID) ([]model.MovieRating, error) {
	rows, err := r.pool.Query(ctx, `
		select r.movieid, m.slug, r.rating
		from ratings r
		inner join movies m on r.movieid = m.id
		where r.userid = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ratings for user: %w", err)
	}
	defer rows.Close()

	ratings := make([]model.MovieRating, 0)
	for rows.Next() {
		var rating model.MovieRating
		if err := rows.Scan(&rating.MovieID, &rating.Slug, &rating.Rating); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ratings for user: %w", err)
	}

	return ratings, nil
}

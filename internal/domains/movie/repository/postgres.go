package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movies-backend/internal/domains/movie/model"
)

// postgresRepository - raw SQL with pgxpool. Rating aggregates are
// computed inside the queries so a movie and its ratings always come
// from a single consistent read.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// sortColumns whitelists the sortable fields. The service validates
// the sort field before it ever reaches this map.
var sortColumns = map[string]string{
	"title":         "m.title",
	"yearofrelease": "m.yearofrelease",
}

func (r *postgresRepository) Create(ctx context.Context, movie model.Movie) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		insert into movies (id, slug, title, yearofrelease, genres)
		values ($1, $2, $3, $4, $5)
	`, movie.ID, movie.Slug, movie.Title, movie.YearOfRelease, movie.Genres)
	if err != nil {
		return false, fmt.Errorf("insert movie: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*model.Movie, error) {
	return r.getOne(ctx, "m.id = $1", id, userID)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string, userID *uuid.UUID) (*model.Movie, error) {
	return r.getOne(ctx, "m.slug = $1", slug, userID)
}

func (r *postgresRepository) getOne(ctx context.Context, predicate string, key interface{}, userID *uuid.UUID) (*model.Movie, error) {
	query := fmt.Sprintf(`
		select m.id, m.slug, m.title, m.yearofrelease, m.genres,
		       round(avg(r.rating), 1)::float8 as rating,
		       myr.rating as userrating
		from movies m
		left join ratings r on m.id = r.movieid
		left join ratings myr on m.id = myr.movieid and myr.userid = $2
		where %s
		group by m.id, myr.rating
	`, predicate)

	var movie model.Movie
	err := r.pool.QueryRow(ctx, query, key, userID).Scan(
		&movie.ID,
		&movie.Slug,
		&movie.Title,
		&movie.YearOfRelease,
		&movie.Genres,
		&movie.Rating,
		&movie.UserRating,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return &movie, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, options model.ListOptions) ([]model.Movie, error) {
	orderClause := "m.id"
	if column, ok := sortColumns[options.SortField]; ok {
		direction := "asc"
		if options.SortDirection == model.SortDescending {
			direction = "desc"
		}
		orderClause = fmt.Sprintf("%s %s, m.id", column, direction)
	}

	query := fmt.Sprintf(`
		select m.id, m.slug, m.title, m.yearofrelease, m.genres,
		       round(avg(r.rating), 1)::float8 as rating,
		       myr.rating as userrating
		from movies m
		left join ratings r on m.id = r.movieid
		left join ratings myr on m.id = myr.movieid and myr.userid = $1
		where ($2::text = '' or m.title ilike concat('%%', $2::text, '%%'))
		  and ($3::int is null or m.yearofrelease = $3::int)
		group by m.id, myr.rating
		order by %s
		limit $4 offset $5
	`, orderClause)

	offset := (options.Page - 1) * options.PageSize
	rows, err := r.pool.Query(ctx, query, options.UserID, options.Title, options.Year, options.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]model.Movie, 0, options.PageSize)
	for rows.Next() {
		var movie model.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Slug,
			&movie.Title,
			&movie.YearOfRelease,
			&movie.Genres,
			&movie.Rating,
			&movie.UserRating,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	return movies, nil
}

func (r *postgresRepository) Update(ctx context.Context, movie model.Movie) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		update movies
		set slug = $1, title = $2, yearofrelease = $3, genres = $4
		where id = $5
	`, movie.Slug, movie.Title, movie.YearOfRelease, movie.Genres, movie.ID)
	if err != nil {
		return false, fmt.Errorf("update movie: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `delete from movies where id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete movie: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `select exists(select 1 from movies where id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movie exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetCount(ctx context.Context, title string, year *int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		select count(id) from movies
		where ($1::text = '' or title ilike concat('%', $1::text, '%'))
		  and ($2::int is null or yearofrelease = $2::int)
	`, title, year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

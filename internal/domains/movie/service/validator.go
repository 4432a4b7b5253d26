package service

import (
	"context"
	"errors"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"movies-backend/internal/domains/movie/model"
	"movies-backend/internal/domains/movie/repository"
	"movies-backend/internal/shared/validation"
)

// MovieValidator runs the movie and list-options rule sets. Every rule
// is evaluated so callers get the complete violation list, not just the
// first failure.
type MovieValidator struct {
	movies repository.Repository
}

func NewMovieValidator(movies repository.Repository) *MovieValidator {
	return &MovieValidator{movies: movies}
}

// ValidateMovie checks the candidate movie, including slug uniqueness.
// A movie may keep its own slug across updates; claiming another
// movie's slug is a violation.
func (v *MovieValidator) ValidateMovie(ctx context.Context, movie *model.Movie) error {
	err := ozzo.ValidateStruct(movie,
		ozzo.Field(&movie.ID, ozzo.By(requiredUUID)),
		ozzo.Field(&movie.Title, ozzo.Required),
		ozzo.Field(&movie.Genres, ozzo.Required),
		ozzo.Field(&movie.YearOfRelease,
			ozzo.Required,
			ozzo.Max(time.Now().UTC().Year()).Error("must be no later than the current year"),
		),
	)

	violations := ozzo.Errors{}
	if err != nil {
		var errs ozzo.Errors
		if !errors.As(err, &errs) {
			return err
		}
		violations = errs
	}

	if slugErr, err := v.validateSlug(ctx, movie); err != nil {
		return err
	} else if slugErr != nil {
		violations["slug"] = slugErr
	}

	if len(violations) > 0 {
		return validation.FromOzzoErrors(violations)
	}
	return nil
}

// validateSlug looks up the candidate slug. The first return value is
// the violation (nil when the slug is free or owned by the candidate),
// the second a storage failure.
func (v *MovieValidator) validateSlug(ctx context.Context, movie *model.Movie) (error, error) {
	existing, err := v.movies.GetBySlug(ctx, movie.Slug, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != movie.ID {
		return errors.New("this movie already exists in the system"), nil
	}
	return nil, nil
}

// ValidateListOptions checks paging bounds and the sort directive.
func (v *MovieValidator) ValidateListOptions(options model.ListOptions) error {
	err := ozzo.ValidateStruct(&options,
		ozzo.Field(&options.Page, ozzo.Required.Error("must be at least 1"), ozzo.Min(1)),
		ozzo.Field(&options.PageSize,
			ozzo.Required.Error("must be between 1 and 25"),
			ozzo.Min(1), ozzo.Max(25).Error("must be between 1 and 25"),
		),
		ozzo.Field(&options.SortField,
			ozzo.In("title", "yearofrelease").Error("you can only sort by title or yearofrelease"),
		),
	)
	if err != nil {
		var errs ozzo.Errors
		if errors.As(err, &errs) {
			return validation.FromOzzoErrors(errs)
		}
		return err
	}
	return nil
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("cannot be blank")
	}
	return nil
}

// NormalizeSortField lowercases and strips the optional +/- direction
// prefix used by the HTTP layer ("-title" means title descending).
func NormalizeSortField(raw string) (string, model.SortDirection) {
	if raw == "" {
		return "", model.SortUnsorted
	}

	direction := model.SortAscending
	field := raw
	switch {
	case strings.HasPrefix(raw, "-"):
		direction = model.SortDescending
		field = raw[1:]
	case strings.HasPrefix(raw, "+"):
		field = raw[1:]
	}
	return strings.ToLower(field), direction
}

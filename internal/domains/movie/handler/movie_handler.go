package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movies-backend/internal/auth"
	"movies-backend/internal/domains/movie/model"
	"movies-backend/internal/domains/movie/service"
	"movies-backend/internal/shared/response"
	"movies-backend/internal/shared/validation"
	"movies-backend/pkg/cache"
	"movies-backend/pkg/logger"
)

// CacheTag labels every cached movie response. Mutating handlers evict
// the whole tag after a write; the service layer never touches the
// cache itself.
const CacheTag = "movies"

type MovieHandler struct {
	service  service.ServiceInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewMovieHandler(service service.ServiceInterface, cache cache.Cache, cacheTTL time.Duration) *MovieHandler {
	return &MovieHandler{
		service:  service,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Create - POST /api/v1/movies (admin tier)
func (h *MovieHandler) Create(c *gin.Context) {
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movie := req.ToMovie(uuid.New())
	if err := h.service.Create(c.Request.Context(), &movie); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr)
			return
		}
		logger.Error("failed to create movie", err)
		response.InternalServerError(c, "Failed to create movie")
		return
	}

	h.evict(c)
	response.Success(c, http.StatusCreated, movie)
}

// Get - GET /api/v1/movies/:idOrSlug
// The path segment is resolved as an id when it parses as a uuid,
// otherwise as a slug.
func (h *MovieHandler) Get(c *gin.Context) {
	idOrSlug := c.Param("idOrSlug")
	userID := auth.UserID(c)
	ctx := c.Request.Context()

	cacheKey := detailCacheKey(idOrSlug, userID)
	var cached model.Movie
	if found, err := h.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Error("movie cache read failed", err)
	} else if found {
		response.Success(c, http.StatusOK, cached)
		return
	}

	var movie *model.Movie
	var err error
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		movie, err = h.service.GetByID(ctx, id, userID)
	} else {
		movie, err = h.service.GetBySlug(ctx, idOrSlug, userID)
	}
	if err != nil {
		logger.Error("failed to get movie", err)
		response.InternalServerError(c, "Failed to get movie")
		return
	}
	if movie == nil {
		response.NotFound(c, "Movie not found")
		return
	}

	if err := h.cache.Set(ctx, cacheKey, movie, h.cacheTTL, CacheTag); err != nil {
		logger.Error("movie cache write failed", err)
	}

	response.Success(c, http.StatusOK, movie)
}

type listPayload struct {
	Movies []model.Movie `json:"movies"`
	Meta   response.Meta `json:"meta"`
}

// List - GET /api/v1/movies
// Query params: title, year, sortBy (optionally prefixed with - for
// descending), page, pageSize.
func (h *MovieHandler) List(c *gin.Context) {
	userID := auth.UserID(c)
	ctx := c.Request.Context()

	options, ok := h.parseListOptions(c)
	if !ok {
		return
	}
	options = options.WithUser(userID)

	cacheKey := options.CacheKey()
	var cached listPayload
	if found, err := h.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Error("movie list cache read failed", err)
	} else if found {
		response.SuccessWithMeta(c, http.StatusOK, cached.Movies, &cached.Meta)
		return
	}

	movies, total, err := h.service.GetAll(ctx, options)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr)
			return
		}
		logger.Error("failed to list movies", err)
		response.InternalServerError(c, "Failed to list movies")
		return
	}

	meta := response.Meta{
		Page:       options.Page,
		PageSize:   options.PageSize,
		Total:      total,
		TotalPages: (total + options.PageSize - 1) / options.PageSize,
	}

	payload := listPayload{Movies: movies, Meta: meta}
	if err := h.cache.Set(ctx, cacheKey, payload, h.cacheTTL, CacheTag); err != nil {
		logger.Error("movie list cache write failed", err)
	}

	response.SuccessWithMeta(c, http.StatusOK, movies, &meta)
}

// Update - PUT /api/v1/movies/:id (trusted member tier)
func (h *MovieHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		response.BadRequest(c, "Invalid movie id")
		return
	}

	var req model.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movie := req.ToMovie(id)
	updated, err := h.service.Update(c.Request.Context(), &movie, auth.UserID(c))
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr)
			return
		}
		logger.Error("failed to update movie", err)
		response.InternalServerError(c, "Failed to update movie")
		return
	}
	if updated == nil {
		response.NotFound(c, "Movie not found")
		return
	}

	h.evict(c)
	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /api/v1/movies/:id (admin tier)
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		response.BadRequest(c, "Invalid movie id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		logger.Error("failed to delete movie", err)
		response.InternalServerError(c, "Failed to delete movie")
		return
	}

	h.evict(c)

	if !deleted {
		response.NotFound(c, "Movie not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *MovieHandler) parseListOptions(c *gin.Context) (model.ListOptions, bool) {
	options := model.ListOptions{
		Title:    c.Query("title"),
		Page:     1,
		PageSize: 10,
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "year must be an integer")
			return options, false
		}
		options.Year = &year
	}

	options.SortField, options.SortDirection = service.NormalizeSortField(c.Query("sortBy"))

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.BadRequest(c, "page must be an integer")
			return options, false
		}
		options.Page = page
	}

	if sizeStr := c.Query("pageSize"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			response.BadRequest(c, "pageSize must be an integer")
			return options, false
		}
		options.PageSize = size
	}

	return options, true
}

func (h *MovieHandler) evict(c *gin.Context) {
	if err := h.cache.EvictByTag(c.Request.Context(), CacheTag); err != nil {
		logger.Error("cache eviction failed", err)
	}
}

func detailCacheKey(idOrSlug string, userID *uuid.UUID) string {
	user := ""
	if userID != nil {
		user = userID.String()
	}
	return fmt.Sprintf("movies:detail:%s:u=%s", idOrSlug, user)
}

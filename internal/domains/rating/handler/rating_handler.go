package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movies-backend/internal/auth"
	moviehandler "movies-backend/internal/domains/movie/handler"
	"movies-backend/internal/domains/rating/model"
	"movies-backend/internal/domains/rating/service"
	"movies-backend/internal/shared/response"
	"movies-backend/internal/shared/validation"
	"movies-backend/pkg/cache"
	"movies-backend/pkg/logger"
)

type RatingHandler struct {
	service service.ServiceInterface
	cache   cache.Cache
}

func NewRatingHandler(service service.ServiceInterface, cache cache.Cache) *RatingHandler {
	return &RatingHandler{
		service: service,
		cache:   cache,
	}
}

// Rate - PUT /api/v1/movies/:id/ratings (trusted member tier)
func (h *RatingHandler) Rate(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		response.BadRequest(c, "Invalid movie id")
		return
	}

	userID := auth.UserID(c)
	if userID == nil {
		response.Unauthorized(c, "A user identity is required to rate a movie")
		return
	}

	var req model.RateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rated, err := h.service.RateMovie(c.Request.Context(), movieID, req.Rating, *userID)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.ValidationFailed(c, vErr)
			return
		}
		logger.Error("failed to rate movie", err)
		response.InternalServerError(c, "Failed to rate movie")
		return
	}
	if !rated {
		response.NotFound(c, "Movie not found")
		return
	}

	h.evict(c)
	response.Success(c, http.StatusOK, gin.H{"rated": true})
}

// Delete - DELETE /api/v1/movies/:id/ratings (trusted member tier)
func (h *RatingHandler) Delete(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("idOrSlug"))
	if err != nil {
		response.BadRequest(c, "Invalid movie id")
		return
	}

	userID := auth.UserID(c)
	if userID == nil {
		response.Unauthorized(c, "A user identity is required to delete a rating")
		return
	}

	deleted, err := h.service.DeleteRating(c.Request.Context(), movieID, *userID)
	if err != nil {
		logger.Error("failed to delete rating", err)
		response.InternalServerError(c, "Failed to delete rating")
		return
	}
	if !deleted {
		response.NotFound(c, "Rating not found")
		return
	}

	h.evict(c)
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetUserRatings - GET /api/v1/ratings/me (trusted member tier)
func (h *RatingHandler) GetUserRatings(c *gin.Context) {
	userID := auth.UserID(c)
	if userID == nil {
		response.Unauthorized(c, "A user identity is required to list ratings")
		return
	}

	ratings, err := h.service.GetRatingsForUser(c.Request.Context(), *userID)
	if err != nil {
		logger.Error("failed to list user ratings", err)
		response.InternalServerError(c, "Failed to list ratings")
		return
	}

	response.Success(c, http.StatusOK, ratings)
}

// evict drops cached movie responses; rating writes change the
// aggregates embedded in them.
func (h *RatingHandler) evict(c *gin.Context) {
	if err := h.cache.EvictByTag(c.Request.Context(), moviehandler.CacheTag); err != nil {
		logger.Error("cache eviction failed", err)
	}
}

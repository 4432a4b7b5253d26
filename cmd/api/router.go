package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movies-backend/internal/auth"
	"movies-backend/internal/shared/middleware"
	"movies-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Fake token issuer for local development only.
	if c.Config.App.Environment == "development" {
		router.POST("/token", tokenHandler(c))
	}

	v1 := router.Group("/api/v1")
	v1.Use(auth.ClaimsMiddleware(c.JWTManager))
	{
		v1.GET("/health", healthCheckHandler(c))

		setupMovieRoutes(v1, c)
		setupRatingRoutes(v1, c)
	}

	return router
}

func setupMovieRoutes(v1 *gin.RouterGroup, c *container.Container) {
	movies := v1.Group("/movies")
	{
		movies.POST("", auth.RequireTier(c.Authorizer, auth.TierAdmin), c.MovieHandler.Create)
		movies.GET("", c.MovieHandler.List)
		movies.GET("/:idOrSlug", c.MovieHandler.Get)

		// Gin cannot mix :id and :idOrSlug on one segment, so the
		// mutating routes reuse the :idOrSlug name and parse it as id.
		movies.PUT("/:idOrSlug", auth.RequireTier(c.Authorizer, auth.TierTrustedMember), c.MovieHandler.Update)
		movies.DELETE("/:idOrSlug", auth.RequireTier(c.Authorizer, auth.TierAdmin), c.MovieHandler.Delete)

		movies.PUT("/:idOrSlug/ratings", auth.RequireTier(c.Authorizer, auth.TierTrustedMember), c.RatingHandler.Rate)
		movies.DELETE("/:idOrSlug/ratings", auth.RequireTier(c.Authorizer, auth.TierTrustedMember), c.RatingHandler.Delete)
	}
}

func setupRatingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ratings := v1.Group("/ratings")
	{
		ratings.GET("/me", auth.RequireTier(c.Authorizer, auth.TierTrustedMember), c.RatingHandler.GetUserRatings)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}
		status := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}

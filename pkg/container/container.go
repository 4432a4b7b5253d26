package container

import (
	"context"
	"fmt"
	"time"

	"movies-backend/internal/auth"
	"movies-backend/internal/config"
	infraCache "movies-backend/internal/infrastructure/cache"
	"movies-backend/internal/infrastructure/database"
	"movies-backend/pkg/cache"
	"movies-backend/pkg/jwt"
	"movies-backend/pkg/logger"

	movieHandler "movies-backend/internal/domains/movie/handler"
	movieRepo "movies-backend/internal/domains/movie/repository"
	movieService "movies-backend/internal/domains/movie/service"

	ratingHandler "movies-backend/internal/domains/rating/handler"
	ratingRepo "movies-backend/internal/domains/rating/repository"
	ratingService "movies-backend/internal/domains/rating/service"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. Initialization order matters: config first,
// then infrastructure, then repositories, services and handlers.
type Container struct {
	// Infrastructure - shared across all domains, singleton lifecycle.
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Authorizer *auth.Authorizer

	// Repositories - domain data access, stateless.
	MovieRepo  movieRepo.Repository
	RatingRepo ratingRepo.Repository

	// Services - domain business logic, stateless.
	MovieService  movieService.ServiceInterface
	RatingService ratingService.ServiceInterface

	// Handlers - thin HTTP layer delegating to services.
	MovieHandler  *movieHandler.MovieHandler
	RatingHandler *ratingHandler.RatingHandler

	redisCache *infraCache.RedisCache
}

// NewContainer builds and initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redisCache = redisCache
	c.Cache = redisCache
	logger.Info("redis connected", nil)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	c.Authorizer = auth.NewAuthorizer(cfg.Auth.APIKey)

	c.MovieRepo = movieRepo.NewPostgresRepository(db.Pool)
	c.RatingRepo = ratingRepo.NewPostgresRepository(db.Pool)

	validator := movieService.NewMovieValidator(c.MovieRepo)
	c.MovieService = movieService.NewService(c.MovieRepo, c.RatingRepo, validator)
	c.RatingService = ratingService.NewService(c.RatingRepo, c.MovieRepo)

	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService, c.Cache, cfg.Cache.MovieTTL)
	c.RatingHandler = ratingHandler.NewRatingHandler(c.RatingService, c.Cache)

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

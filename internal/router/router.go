package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/cinema-showcase/internal/config"
	"github.com/iliyamo/cinema-showcase/internal/handler"
	"github.com/iliyamo/cinema-showcase/internal/middleware"
)

// Deps bundles what the routes need.  Redis may be nil, in which case the
// response cache and the rate limiter are pass-throughs.
type Deps struct {
	Movies    *handler.MovieHandler
	Theaters  *handler.TheaterHandler
	Checkout  *handler.CheckoutHandler
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
}

// RegisterRoutes registers routes that sit outside the versioned API.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the /v1 API.  Every /v1 route shares the token
// bucket; only the movie proxy routes are cached, since they are the ones
// that spend upstream quota.
func RegisterAPI(e *echo.Echo, d Deps) {
	v1 := e.Group("/v1")
	v1.Use(middleware.NewTokenBucket(d.RateLimit, d.Redis))

	// Movie metadata proxy: upcoming list, then per-movie details, videos,
	// first trailer and images.
	movies := v1.Group("/movies", middleware.NewRedisCache(d.Cache, d.Redis))
	movies.GET("/upcoming", d.Movies.Upcoming)
	movies.GET("/:id", d.Movies.Details)
	movies.GET("/:id/videos", d.Movies.Videos)
	movies.GET("/:id/trailer", d.Movies.Trailer)
	movies.GET("/:id/images", d.Movies.Images)

	// Static catalog shown on the search and booking screens.
	v1.GET("/search", handler.Search)
	v1.GET("/categories", handler.Categories)
	v1.GET("/showtimes", handler.Showtimes)

	// Seat maps are generated per request from the configured layouts.
	v1.GET("/theaters", d.Theaters.List)
	v1.GET("/theaters/:id/seats", d.Theaters.Seats)

	// Mock payment flow.
	v1.POST("/checkout/quote", d.Checkout.Quote)
	v1.POST("/checkout/complete", d.Checkout.Complete)
}

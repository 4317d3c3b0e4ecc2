package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/cinema-showcase/internal/checkout"
	"github.com/iliyamo/cinema-showcase/internal/config"
	"github.com/iliyamo/cinema-showcase/internal/handler"
	"github.com/iliyamo/cinema-showcase/internal/router"
	queue_publisher "github.com/iliyamo/cinema-showcase/internal/service"
	"github.com/iliyamo/cinema-showcase/internal/tmdb"
)

func runServeCmd(ctx context.Context) {
	cfg := config.Load() // Load environment config

	layouts, closeLayouts, err := newLayoutSource(ctx, config.LayoutConfig{
		File:           cfg.LayoutsFile,
		DefaultTheater: cfg.DefaultTheater,
		DB:             cfg.DB,
	})
	if err != nil {
		log.Fatalf("layouts: %v", err)
	}
	defer closeLayouts()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	api := tmdb.NewClient(&http.Client{Timeout: cfg.TMDBTimeout}, cfg.TMDBBaseURL, cfg.TMDBAPIKey)
	publisher := queue_publisher.New(cfg.AMQPURL)
	quotes := checkout.NewService(layouts, publisher, cfg.QuoteSecret, cfg.QuoteTTL).
		WithDefaultTheater(cfg.DefaultTheater)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.Deps{
		Movies:    &handler.MovieHandler{API: api, Artwork: tmdb.NewImages(cfg.TMDBImageBaseURL)},
		Theaters:  &handler.TheaterHandler{Layouts: layouts, DefaultID: cfg.DefaultTheater},
		Checkout:  &handler.CheckoutHandler{Service: quotes},
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

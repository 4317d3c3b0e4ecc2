package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-showcase/internal/model"
	"github.com/iliyamo/cinema-showcase/internal/tmdb"
)

// MovieAPI is the part of the movie metadata client the handlers use.
// *tmdb.Client satisfies it.
type MovieAPI interface {
	UpcomingMovies(ctx context.Context, page int) (model.UpcomingMoviesResponse, error)
	MovieDetails(ctx context.Context, movieID int64) (model.MovieDetails, error)
	MovieVideos(ctx context.Context, movieID int64) (model.MovieVideosResponse, error)
	MovieImages(ctx context.Context, movieID int64) (model.MovieImages, error)
}

// MovieHandler proxies the movie metadata API and decorates its payloads
// with ready-to-use image URLs.
type MovieHandler struct {
	API     MovieAPI
	Artwork tmdb.Images
}

// MovieItem is a list entry with its poster resolved.
type MovieItem struct {
	model.Movie
	PosterURL    string `json:"poster_url"`
	BackdropURL  string `json:"backdrop_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UpcomingPage is one page of upcoming movies.
type UpcomingPage struct {
	Dates        model.DateRange `json:"dates"`
	Page         int             `json:"page"`
	Results      []MovieItem     `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
	HasMore      bool            `json:"has_more"`
}

// MovieDetail is the details payload with its artwork resolved.
type MovieDetail struct {
	model.MovieDetails
	PosterURL   string `json:"poster_url"`
	BackdropURL string `json:"backdrop_url"`
}

// Upcoming handles GET /v1/movies/upcoming?page=N.  A missing or
// malformed page means the first page.
func (h *MovieHandler) Upcoming(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	res, err := h.API.UpcomingMovies(c.Request().Context(), page)
	if err != nil {
		return upstreamError(c, "upcoming", err)
	}
	out := UpcomingPage{
		Dates:        res.Dates,
		Page:         res.Page,
		Results:      make([]MovieItem, 0, len(res.Results)),
		TotalPages:   res.TotalPages,
		TotalResults: res.TotalResults,
		HasMore:      res.HasMore(),
	}
	for _, m := range res.Results {
		out.Results = append(out.Results, MovieItem{
			Movie:        m,
			PosterURL:    h.Artwork.Poster(m.PosterPath),
			BackdropURL:  h.Artwork.Backdrop(m.BackdropPath),
			ThumbnailURL: h.Artwork.Thumbnail(m.PosterPath),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Details handles GET /v1/movies/:id.
func (h *MovieHandler) Details(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid movie id")
	}
	d, err := h.API.MovieDetails(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, "details", err)
	}
	return c.JSON(http.StatusOK, MovieDetail{
		MovieDetails: d,
		PosterURL:    h.Artwork.Poster(d.PosterPath),
		BackdropURL:  h.Artwork.Backdrop(d.BackdropPath),
	})
}

// Videos handles GET /v1/movies/:id/videos.
func (h *MovieHandler) Videos(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid movie id")
	}
	v, err := h.API.MovieVideos(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, "videos", err)
	}
	if v.Results == nil {
		v.Results = []model.MovieVideo{}
	}
	return c.JSON(http.StatusOK, v)
}

// Trailer handles GET /v1/movies/:id/trailer and answers 404 when the
// movie has no video of type Trailer.
func (h *MovieHandler) Trailer(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid movie id")
	}
	v, err := h.API.MovieVideos(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, "trailer", err)
	}
	trailer, found := tmdb.FindTrailer(v.Results)
	if !found {
		return errorJSON(c, http.StatusNotFound, "no trailer available")
	}
	return c.JSON(http.StatusOK, trailer)
}

// Images handles GET /v1/movies/:id/images.
func (h *MovieHandler) Images(c echo.Context) error {
	id, ok := movieID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid movie id")
	}
	imgs, err := h.API.MovieImages(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, "images", err)
	}
	return c.JSON(http.StatusOK, imgs)
}

func movieID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// upstreamError maps movie API failures: 404 stays 404, an id the client
// rejects is a 400, anything else is a bad gateway.
func upstreamError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, tmdb.ErrInvalidMovieID):
		return errorJSON(c, http.StatusBadRequest, "invalid movie id")
	case tmdb.IsNotFound(err):
		return errorJSON(c, http.StatusNotFound, "movie not found")
	case errors.Is(err, context.Canceled):
		return err
	}
	log.Printf("movies: %s failed: %v", op, err)
	return errorJSON(c, http.StatusBadGateway, "movie service unavailable")
}

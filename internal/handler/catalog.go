package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-showcase/internal/catalog"
)

// Search handles GET /v1/search?q=.  The index is the fixed mock list; an
// empty query yields an empty result rather than an error.
func Search(c echo.Context) error {
	q := c.QueryParam("q")
	return c.JSON(http.StatusOK, echo.Map{
		"query":   q,
		"results": catalog.Search(q),
	})
}

// Categories handles GET /v1/categories.
func Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.Categories()})
}

// Showtimes handles GET /v1/showtimes and returns the booking dates
// together with the slots offered on each of them.
func Showtimes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"dates":     catalog.BookingDates(),
		"showtimes": catalog.Showtimes(),
	})
}

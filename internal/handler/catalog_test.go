package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer() *echo.Echo {
	e := echo.New()
	e.GET("/healthz", Health)
	e.GET("/v1/search", Search)
	e.GET("/v1/categories", Categories)
	e.GET("/v1/showtimes", Showtimes)
	return e
}

func TestHealth(t *testing.T) {
	rec := get(newCatalogServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSearch(t *testing.T) {
	rec := get(newCatalogServer(), "/v1/search?q=time")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			Title string `json:"title"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Results, 3)

	rec = get(newCatalogServer(), "/v1/search")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestCategoriesAndShowtimes(t *testing.T) {
	rec := get(newCatalogServer(), "/v1/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comedies")

	rec = get(newCatalogServer(), "/v1/showtimes")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Dates     []string `json:"dates"`
		Showtimes []struct {
			Time string `json:"time"`
		} `json:"showtimes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Dates, 5)
	assert.Equal(t, "12:30", body.Showtimes[0].Time)
}

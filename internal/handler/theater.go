package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-showcase/internal/checkout"
	"github.com/iliyamo/cinema-showcase/internal/layout"
	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

// TheaterHandler serves theater layouts and their generated seat grids.
type TheaterHandler struct {
	Layouts   layout.Source
	DefaultID string // resolved when the path id is "default"
}

// TheaterSummary is a list entry of GET /v1/theaters.
type TheaterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Seats int    `json:"seats"`
}

// LegendEntry describes one status of the seat legend.
type LegendEntry struct {
	Status seatmap.Status `json:"status"`
	Label  string         `json:"label"`
	Price  float64        `json:"price,omitempty"`
}

// SeatMap is the payload of GET /v1/theaters/:id/seats.
type SeatMap struct {
	TheaterID string           `json:"theater_id"`
	Name      string           `json:"name"`
	Rows      [][]seatmap.Seat `json:"rows"`
	Summary   seatmap.Summary  `json:"summary"`
	Legend    []LegendEntry    `json:"legend"`
}

// List handles GET /v1/theaters.
func (h *TheaterHandler) List(c echo.Context) error {
	theaters, err := h.Layouts.List(c.Request().Context())
	if err != nil {
		log.Printf("theaters: list failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "layout store error")
	}
	out := make([]TheaterSummary, 0, len(theaters))
	for _, t := range theaters {
		seats := 0
		for _, r := range t.Rows {
			seats += r.Seats()
		}
		out = append(out, TheaterSummary{ID: t.ID, Name: t.Name, Rows: len(t.Rows), Seats: seats})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Seats handles GET /v1/theaters/:id/seats.  The grid is regenerated from
// the layout on every call.
func (h *TheaterHandler) Seats(c echo.Context) error {
	id := c.Param("id")
	if id == checkout.DefaultTheaterAlias && h.DefaultID != "" {
		id = h.DefaultID
	}
	t, err := h.Layouts.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, seatmap.ErrTheaterNotFound) {
			return errorJSON(c, http.StatusNotFound, "theater not found")
		}
		log.Printf("theaters: get %s failed: %v", id, err)
		return errorJSON(c, http.StatusInternalServerError, "layout store error")
	}
	grid := t.Grid()
	return c.JSON(http.StatusOK, SeatMap{
		TheaterID: t.ID,
		Name:      t.Name,
		Rows:      grid,
		Summary:   seatmap.Summarize(grid),
		Legend:    legend(t.Rules),
	})
}

func legend(r seatmap.Rules) []LegendEntry {
	return []LegendEntry{
		{Status: seatmap.StatusAvailable, Label: "Available", Price: r.RegularPrice},
		{Status: seatmap.StatusOccupied, Label: "Occupied"},
		{Status: seatmap.StatusSelected, Label: "Selected"},
		{Status: seatmap.StatusVIP, Label: "VIP", Price: r.VIPPrice},
	}
}

// Package seatmap builds the seat grid of a theater from a per-row layout
// table and classifies every seat into a display status.
//
// Everything in this package is pure: the grid is regenerated on every
// request from a layout description and a set of rules, nothing is mutated
// and nothing is stored.
package seatmap

import "fmt"

// Status is the display state of a cell in the seat grid.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
	StatusSelected  Status = "selected"
	StatusVIP       Status = "vip"
	StatusGap       Status = "gap"
)

// Seat describes one cell of the grid.  Gap cells occupy a column number so
// that aisles line up, but they carry no price and a "gap-" prefixed ID.
//
// Fields:
//
//	ID     – "{row}-{column}" for real seats, "gap-{row}-{column}" for gaps.
//	Row    – 1-based row number.
//	Column – 1-based column number within the row, gaps included.
//	Status – display status.
//	Price  – seat price; always 0 for gaps.
type Seat struct {
	ID     string  `json:"id"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
	Status Status  `json:"status"`
	Price  float64 `json:"price"`
}

// IsGap reports whether the cell is an aisle placeholder.
func (s Seat) IsGap() bool { return s.Status == StatusGap }

// Selectable reports whether a customer may pick the seat.  Gaps and
// occupied seats never are.
func (s Seat) Selectable() bool {
	switch s.Status {
	case StatusAvailable, StatusSelected, StatusVIP:
		return true
	}
	return false
}

// Label renders the seat the way the selection summary shows it: column
// first, then row.
func (s Seat) Label() string {
	return fmt.Sprintf("%d/%d", s.Column, s.Row)
}

func seatID(row, column int) string { return fmt.Sprintf("%d-%d", row, column) }

func gapID(row, column int) string { return fmt.Sprintf("gap-%d-%d", row, column) }

package seatmap

import (
	"fmt"
	"strings"
)

var glyphs = map[Status]byte{
	StatusAvailable: 'o',
	StatusOccupied:  'x',
	StatusSelected:  '*',
	StatusVIP:       'V',
	StatusGap:       ' ',
}

// Render draws the grid as text, one line per row prefixed with the row
// number.  Trailing blanks are trimmed.
func Render(grid [][]Seat) string {
	var b strings.Builder
	for i, row := range grid {
		line := make([]byte, len(row))
		for j, s := range row {
			g, ok := glyphs[s.Status]
			if !ok {
				g = '?'
			}
			line[j] = g
		}
		fmt.Fprintf(&b, "%2d %s\n", i+1, strings.TrimRight(string(line), " "))
	}
	return b.String()
}

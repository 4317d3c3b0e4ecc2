package seatmap

// DefaultTheaterID identifies the built-in reference layout.
const DefaultTheaterID = "cinetech-hall-1"

// DefaultRows is the reference hall: a narrow front row split by an aisle,
// eleven full rows, and a back row whose left block is replaced by gaps.
func DefaultRows() []RowSpec {
	return []RowSpec{
		{Left: 2, GapBefore: 2, Center: 0, GapAfterCenter: 2, Right: 2},
		{Left: 4, Center: 10, Right: 4},
		{Left: 4, Center: 10, Right: 4},
		{Left: 4, Center: 8, Right: 4},
		{Left: 5, Center: 10, Right: 5},
		{Left: 5, Center: 8, Right: 5},
		{Left: 5, Center: 10, Right: 5},
		{Left: 5, Center: 8, Right: 5},
		{Left: 5, Center: 10, Right: 5},
		{Left: 5, Center: 8, Right: 5},
		{Left: 5, Center: 10, Right: 5},
		{Left: 5, Center: 8, Right: 5},
		{Left: 0, GapBefore: 4, Center: 4, Right: 4},
	}
}

// ReferenceRules returns DefaultRules with the occupied and selected seats
// of the reference hall.
func ReferenceRules() Rules {
	r := DefaultRules()
	r.Occupied = []Coord{
		{2, 5}, {2, 6}, {4, 11}, {4, 12}, {5, 2}, {5, 3}, {5, 16}, {5, 17},
	}
	r.Selected = []Coord{{2, 15}}
	return r
}

// DefaultTheater returns the reference hall used when no layout source is
// configured.
func DefaultTheater() Theater {
	return Theater{
		ID:    DefaultTheaterID,
		Name:  "Cinetech + Hall 1",
		Rows:  DefaultRows(),
		Rules: ReferenceRules(),
	}
}

package seatmap

// RowSpec describes one row of the layout table.  Cells are emitted left to
// right: Left seats, GapBefore gaps, Center seats, GapAfterCenter gaps,
// Right seats.  All counts are expected to be non-negative.
type RowSpec struct {
	Left           int `json:"left" yaml:"left"`
	GapBefore      int `json:"gap_before" yaml:"gap_before"`
	Center         int `json:"center" yaml:"center"`
	GapAfterCenter int `json:"gap_after_center" yaml:"gap_after_center"`
	Right          int `json:"right" yaml:"right"`
}

// Width is the number of cells (seats and gaps) in the row.
func (rs RowSpec) Width() int {
	return rs.Left + rs.GapBefore + rs.Center + rs.GapAfterCenter + rs.Right
}

// Seats is the number of real seats in the row.
func (rs RowSpec) Seats() int {
	return rs.Left + rs.Center + rs.Right
}

// Generate builds the grid for rows using DefaultRules.
func Generate(rows []RowSpec) [][]Seat {
	return DefaultRules().Generate(rows)
}

// Generate builds one slice of cells per row spec, preserving input order.
func (r Rules) Generate(rows []RowSpec) [][]Seat {
	grid := make([][]Seat, 0, len(rows))
	for rowIndex, spec := range rows {
		grid = append(grid, r.generateRow(rowIndex, spec))
	}
	return grid
}

func (r Rules) generateRow(rowIndex int, spec RowSpec) []Seat {
	row := rowIndex + 1
	cells := make([]Seat, 0, spec.Width())
	column := 1

	seats := func(n int) {
		for i := 0; i < n; i++ {
			cells = append(cells, Seat{
				ID:     seatID(row, column),
				Row:    row,
				Column: column,
				Status: r.Classify(rowIndex, column),
				Price:  r.Price(rowIndex),
			})
			column++
		}
	}
	gaps := func(n int) {
		for i := 0; i < n; i++ {
			cells = append(cells, Seat{
				ID:     gapID(row, column),
				Row:    row,
				Column: column,
				Status: StatusGap,
			})
			column++
		}
	}

	seats(spec.Left)
	gaps(spec.GapBefore)
	seats(spec.Center)
	gaps(spec.GapAfterCenter)
	seats(spec.Right)
	return cells
}

// Find returns the cell with the given ID.
func Find(grid [][]Seat, id string) (Seat, bool) {
	for _, row := range grid {
		for _, s := range row {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Seat{}, false
}

// Summary counts the cells of a grid per status.
type Summary struct {
	Rows      int            `json:"rows"`
	Seats     int            `json:"seats"`
	Gaps      int            `json:"gaps"`
	PerStatus map[Status]int `json:"per_status"`
}

// Summarize walks the grid once and returns its counters.
func Summarize(grid [][]Seat) Summary {
	sum := Summary{Rows: len(grid), PerStatus: map[Status]int{}}
	for _, row := range grid {
		for _, s := range row {
			if s.IsGap() {
				sum.Gaps++
				continue
			}
			sum.Seats++
			sum.PerStatus[s.Status]++
		}
	}
	return sum
}

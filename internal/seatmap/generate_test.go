package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RowCountMatchesInput(t *testing.T) {
	tests := []struct {
		name string
		rows []RowSpec
	}{
		{name: "empty", rows: nil},
		{name: "single", rows: []RowSpec{{Left: 3}}},
		{name: "reference", rows: DefaultRows()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := Generate(tc.rows)
			assert.Len(t, grid, len(tc.rows))
		})
	}
}

func TestGenerate_FinalColumnIsRowWidth(t *testing.T) {
	for i, spec := range DefaultRows() {
		grid := Generate([]RowSpec{spec})
		row := grid[0]
		require.Len(t, row, spec.Width(), "row %d", i+1)
		if spec.Width() > 0 {
			assert.Equal(t, spec.Width(), row[len(row)-1].Column, "row %d", i+1)
		}
	}
}

func TestGenerate_ColumnOrderAndGaps(t *testing.T) {
	grid := Generate([]RowSpec{{Left: 2, GapBefore: 2, Center: 0, GapAfterCenter: 2, Right: 2}})
	row := grid[0]

	ids := make([]string, 0, len(row))
	for i, s := range row {
		assert.Equal(t, i+1, s.Column)
		assert.Equal(t, 1, s.Row)
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"1-1", "1-2", "gap-1-3", "gap-1-4", "gap-1-5", "gap-1-6", "1-7", "1-8"}, ids)

	for _, s := range row {
		if s.IsGap() {
			assert.Zero(t, s.Price)
			assert.False(t, s.Selectable())
		} else {
			assert.Equal(t, float64(DefaultRegularPrice), s.Price)
		}
	}
}

func TestGenerate_UniqueSeatIDs(t *testing.T) {
	grid := DefaultTheater().Grid()
	seen := map[string]bool{}
	for _, row := range grid {
		for _, s := range row {
			require.False(t, seen[s.ID], "duplicate id %s", s.ID)
			seen[s.ID] = true
		}
	}
}

func TestGenerate_VIPRowsArePricedAndForced(t *testing.T) {
	grid := DefaultTheater().Grid()
	for rowIndex, row := range grid {
		for _, s := range row {
			if s.IsGap() {
				continue
			}
			if rowIndex >= DefaultVIPRowThreshold {
				assert.Equal(t, StatusVIP, s.Status, s.ID)
				assert.Equal(t, float64(DefaultVIPPrice), s.Price, s.ID)
			} else {
				assert.NotEqual(t, StatusVIP, s.Status, s.ID)
				assert.Equal(t, float64(DefaultRegularPrice), s.Price, s.ID)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	th := DefaultTheater()
	assert.Equal(t, th.Grid(), th.Grid())
}

func TestFind(t *testing.T) {
	grid := DefaultTheater().Grid()

	s, ok := Find(grid, "3-15")
	require.True(t, ok)
	assert.Equal(t, StatusSelected, s.Status)
	assert.Equal(t, "15/3", s.Label())

	s, ok = Find(grid, "3-5")
	require.True(t, ok)
	assert.Equal(t, StatusOccupied, s.Status)
	assert.False(t, s.Selectable())

	_, ok = Find(grid, "99-1")
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	grid := Generate([]RowSpec{
		{Left: 2, GapBefore: 1, Center: 2},
		{Left: 0, GapBefore: 4, Center: 4, Right: 4},
	})
	sum := Summarize(grid)
	assert.Equal(t, 2, sum.Rows)
	assert.Equal(t, 12, sum.Seats)
	assert.Equal(t, 5, sum.Gaps)
	assert.Equal(t, 12, sum.PerStatus[StatusAvailable])
}

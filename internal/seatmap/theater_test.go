package seatmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTheaters = `
theaters:
  - id: small
    name: Small Room
    rows:
      - {left: 2, gap_before: 1, center: 3}
      - {left: 2, gap_before: 1, center: 3, gap_after_center: 1, right: 2}
    rules:
      vip_row_threshold: 1
      regular_price: 10
      vip_price: 25
      occupied:
        - {row_index: 0, column: 4}
  - id: plain
    rows:
      - {center: 6}
`

func TestParseTheaters(t *testing.T) {
	theaters, err := ParseTheaters([]byte(twoTheaters))
	require.NoError(t, err)
	require.Len(t, theaters, 2)

	small := theaters[0]
	assert.Equal(t, "Small Room", small.Name)
	grid := small.Grid()
	require.Len(t, grid, 2)
	assert.Equal(t, StatusOccupied, grid[0][3].Status)
	assert.Equal(t, 10.0, grid[0][0].Price)
	assert.Equal(t, StatusVIP, grid[1][0].Status)
	assert.Equal(t, 25.0, grid[1][0].Price)
	assert.Equal(t, 9, grid[1][len(grid[1])-1].Column)

	plain := theaters[1]
	assert.Equal(t, "plain", plain.Name)
	assert.Equal(t, DefaultRules(), plain.Rules)
}

func TestParseTheaters_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "no theaters", doc: "theaters: []"},
		{name: "missing id", doc: "theaters:\n  - rows:\n      - {left: 1}"},
		{name: "no rows", doc: "theaters:\n  - id: a"},
		{name: "negative count", doc: "theaters:\n  - id: a\n    rows:\n      - {left: -1}"},
		{name: "duplicate id", doc: "theaters:\n  - id: a\n    rows: [{left: 1}]\n  - id: a\n    rows: [{left: 1}]"},
		{name: "duplicate occupied seat", doc: "theaters:\n  - id: a\n    rows: [{left: 4}]\n    rules:\n      occupied: [{row_index: 0, column: 2}, {row_index: 0, column: 2}]"},
		{name: "duplicate selected seat", doc: "theaters:\n  - id: a\n    rows: [{left: 4}]\n    rules:\n      selected: [{row_index: 0, column: 1}, {row_index: 0, column: 1}]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTheaters([]byte(tc.doc))
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParseTheaters_Malformed(t *testing.T) {
	_, err := ParseTheaters([]byte("theaters: {"))
	assert.Error(t, err)
}

func TestLoadTheaters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoTheaters), 0o644))

	theaters, err := LoadTheaters(path)
	require.NoError(t, err)
	assert.Len(t, theaters, 2)

	_, err = LoadTheaters(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultTheater(t *testing.T) {
	th := DefaultTheater()
	require.NoError(t, th.Validate())
	assert.Len(t, th.Rows, 13)
}

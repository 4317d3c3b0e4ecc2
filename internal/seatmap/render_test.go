package seatmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render(DefaultTheater().Grid())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 13)

	assert.Equal(t, " 1 oo    oo", lines[0])
	assert.Equal(t, " 3 oooo"+"xx"+"oooooooo"+"*"+"ooo", lines[2])
	assert.Equal(t, "13     VVVVVVVV", lines[12])
}

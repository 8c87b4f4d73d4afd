package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/stretchr/testify/require"
)

// MinesFromLayout returns the row-major mine indices of a layout where
// '*' marks a mine, together with its width and height
func MinesFromLayout(rows ...string) (w, h int, mines []int) {
	h = len(rows)
	if h > 0 {
		w = len(rows[0])
	}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '*' {
				mines = append(mines, y*w+x)
			}
		}
	}
	return w, h, mines
}

// BoardFromLayout builds a board from a layout, failing the test on error
func BoardFromLayout(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	w, h, mines := MinesFromLayout(rows...)
	b, err := core.NewBoard(w, h, mines)
	require.NoError(t, err)
	return b
}

package ui

import (
	"termsnake/game/board"
	"termsnake/game/types"
)

// Mirror is a frontend side copy of the board for renderers that redraw
// the whole frame each time. It is kept current from the dirty stream.
type Mirror struct {
	grid  types.Grid
	cells []types.CellState
}

// Sync copies every cell on a full update and only dirty cells otherwise.
// It returns how many cells it copied.
func (m *Mirror) Sync(b *board.Board, full bool) int {
	if m.grid != b.Grid() {
		m.grid = b.Grid()
		m.cells = make([]types.CellState, m.grid.Cells())
		full = true
	}
	n := 0
	if full {
		for p, c := range b.Cells() {
			m.cells[p.Y*m.grid.Width+p.X] = c
			n++
		}
		b.Discard()
		return n
	}
	for p, c := range b.TakeDirty() {
		m.cells[p.Y*m.grid.Width+p.X] = c
		n++
	}
	return n
}

func (m *Mirror) Grid() types.Grid {
	return m.grid
}

func (m *Mirror) At(p types.Point) types.CellState {
	return m.cells[p.Y*m.grid.Width+p.X]
}

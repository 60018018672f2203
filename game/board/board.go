// Package board holds the fixed-size cell grid and the dirty tracking used
// for incremental redraw.
package board

import (
	"fmt"
	"iter"

	"termsnake/game/types"
)

// WallShape classifies a wall cell for border glyph selection.
type WallShape int

const (
	NotWall WallShape = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Horizontal
	Vertical
)

// Board is a row-major grid of cell states. Every Mark records the cell as
// dirty until a renderer consumes it through TakeDirty.
type Board struct {
	grid  types.Grid
	wrap  types.WrapMode
	cells []types.CellState
	dirty []bool
	order []int // dirty indices in order of first marking
}

// New builds a board with walls on every edge that is not wrapped. All
// cells start dirty so the first render paints the whole board.
func New(grid types.Grid, wrap types.WrapMode) *Board {
	n := grid.Cells()
	b := &Board{
		grid:  grid,
		wrap:  wrap,
		cells: make([]types.CellState, n),
		dirty: make([]bool, n),
		order: make([]int, 0, n),
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			state := types.Empty
			if b.isEdgeWall(p) {
				state = types.Wall
			}
			b.Mark(p, state)
		}
	}
	return b
}

func (b *Board) isEdgeWall(p types.Point) bool {
	if !b.wrap.Horizontal() && (p.X == 0 || p.X == b.grid.Width-1) {
		return true
	}
	return !b.wrap.Vertical() && (p.Y == 0 || p.Y == b.grid.Height-1)
}

func (b *Board) Grid() types.Grid     { return b.grid }
func (b *Board) Width() int           { return b.grid.Width }
func (b *Board) Height() int          { return b.grid.Height }
func (b *Board) Wrap() types.WrapMode { return b.wrap }

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p types.Point) bool {
	return p.X >= 0 && p.X < b.grid.Width && p.Y >= 0 && p.Y < b.grid.Height
}

// Interior reports whether p is off the border ring, regardless of wrapping.
func (b *Board) Interior(p types.Point) bool {
	return p.X >= 1 && p.X <= b.grid.Width-2 && p.Y >= 1 && p.Y <= b.grid.Height-2
}

func (b *Board) index(p types.Point) int {
	return p.X + p.Y*b.grid.Width
}

func (b *Board) point(i int) types.Point {
	return types.Point{X: i % b.grid.Width, Y: i / b.grid.Width}
}

// At returns the state of the cell at p. p must be in bounds.
func (b *Board) At(p types.Point) types.CellState {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: read out of range %v on %dx%d", p, b.grid.Width, b.grid.Height))
	}
	return b.cells[b.index(p)]
}

// Mark sets the state of the cell at p and records it as dirty. Callers
// must check InBounds first; an out of range point is a programming error.
func (b *Board) Mark(p types.Point, state types.CellState) {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: mark out of range %v on %dx%d", p, b.grid.Width, b.grid.Height))
	}
	i := b.index(p)
	b.cells[i] = state
	if !b.dirty[i] {
		b.dirty[i] = true
		b.order = append(b.order, i)
	}
}

// DirtyCount is the number of cells changed since the last drain.
func (b *Board) DirtyCount() int {
	return len(b.order)
}


// Cells walks every cell in row-major order. It does not touch the dirty set.
func (b *Board) Cells() iter.Seq2[types.Point, types.CellState] {
	return func(yield func(types.Point, types.CellState) bool) {
		for i, c := range b.cells {
			if !yield(b.point(i), c) {
				return
			}
		}
	}
}

// TakeDirty yields every cell changed since the previous drain with its
// current state, in order of first change. Each yielded cell is cleared;
// stopping early leaves the rest dirty for the next call.
func (b *Board) TakeDirty() iter.Seq2[types.Point, types.CellState] {
	return func(yield func(types.Point, types.CellState) bool) {
		n := 0
		defer func() {
			b.order = append(b.order[:0], b.order[n:]...)
		}()
		for n < len(b.order) {
			i := b.order[n]
			n++
			b.dirty[i] = false
			if !yield(b.point(i), b.cells[i]) {
				return
			}
		}
	}
}

// Discard drops the dirty set without yielding it, used after a full repaint.
func (b *Board) Discard() {
	for range b.TakeDirty() {
	}
}

// WallShape tells a renderer which border glyph the wall at p needs.
func (b *Board) WallShape(p types.Point) WallShape {
	if b.At(p) != types.Wall {
		return NotWall
	}
	left := !b.wrap.Horizontal() && p.X == 0
	right := !b.wrap.Horizontal() && p.X == b.grid.Width-1
	top := !b.wrap.Vertical() && p.Y == 0
	bottom := !b.wrap.Vertical() && p.Y == b.grid.Height-1
	switch {
	case top && left:
		return TopLeft
	case top && right:
		return TopRight
	case bottom && left:
		return BottomLeft
	case bottom && right:
		return BottomRight
	case top || bottom:
		return Horizontal
	default:
		return Vertical
	}
}

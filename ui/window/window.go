// Package window is the raylib frontend. Raylib is not thread safe, so
// both drawing and key polling happen on the game loop goroutine.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"termsnake/game"
	"termsnake/game/board"
	"termsnake/game/types"
	"termsnake/ui"
)

const (
	borderPadding = 10
	statusHeight  = 70
	fontSize      = 18
	lineHeight    = 22
)

var tones = map[ui.Tone]rl.Color{
	ui.ToneWall:  rl.DarkGray,
	ui.ToneApple: rl.Red,
	ui.ToneHead:  rl.Lime,
	ui.ToneBody:  rl.DarkGreen,
	ui.ToneText:  rl.RayWhite,
	ui.ToneAlert: rl.Maroon,
}

// Window renders the board and reads keys from a raylib window.
type Window struct {
	cellSize int32
	dev      bool
	mirror   ui.Mirror
}

// Open creates the window sized for grid. Call Close when done.
func Open(grid types.Grid, cellSize int32, dev bool) *Window {
	width := int32(grid.Width)*cellSize + 2*borderPadding
	height := int32(grid.Height)*cellSize + 2*borderPadding + statusHeight
	rl.InitWindow(width, height, "termsnake")
	// Escape is a game key, not a request to close.
	rl.SetExitKey(0)
	return &Window{cellSize: cellSize, dev: dev}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Drain returns the keys raylib queued since the last frame. Closing the
// window reads as a quit key.
func (w *Window) Drain() ([]types.Key, error) {
	if rl.WindowShouldClose() {
		return []types.Key{types.KeyQuit}, nil
	}
	var keys []types.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key := translateKey(k); key != types.KeyNone {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func translateKey(k int32) types.Key {
	switch k {
	case rl.KeyUp, rl.KeyW:
		return types.KeyUp
	case rl.KeyDown, rl.KeyS:
		return types.KeyDown
	case rl.KeyLeft, rl.KeyA:
		return types.KeyLeft
	case rl.KeyRight, rl.KeyD, rl.KeyF:
		return types.KeyRight
	case rl.KeyQ, rl.KeyEscape:
		return types.KeyQuit
	case rl.KeyR, rl.KeyEnter:
		return types.KeyRestart
	case rl.KeyI:
		return types.KeyAppleUp
	case rl.KeyK:
		return types.KeyAppleDown
	case rl.KeyJ:
		return types.KeyAppleLeft
	case rl.KeyL:
		return types.KeyAppleRight
	}
	return types.KeyNone
}

// Render folds the board changes into the local copy and draws a frame.
// Raylib clears the back buffer every frame, so the whole copy is drawn.
func (w *Window) Render(b *board.Board, st game.Status, full bool) error {
	w.mirror.Sync(b, full)
	grid := w.mirror.Grid()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			w.drawCell(p, w.mirror.At(p), st.Heading)
		}
	}
	w.drawStatus(grid, st)
	rl.EndDrawing()
	return nil
}

func (w *Window) drawCell(p types.Point, c types.CellState, heading types.Direction) {
	var tone ui.Tone
	switch c {
	case types.Wall:
		tone = ui.ToneWall
	case types.Apple:
		tone = ui.ToneApple
	case types.SnakeHead:
		tone = ui.ToneHead
	case types.SnakeBody:
		tone = ui.ToneBody
	default:
		return
	}
	x := borderPadding + int32(p.X)*w.cellSize
	y := borderPadding + int32(p.Y)*w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, tones[tone])
	if c == types.SnakeHead {
		w.drawHeading(x, y, heading)
	}
}

// drawHeading marks the head cell with a triangle pointing where the
// snake travels.
func (w *Window) drawHeading(x, y int32, d types.Direction) {
	half := w.cellSize / 2
	v := func(dx, dy int32) rl.Vector2 {
		return rl.Vector2{X: float32(x + dx), Y: float32(y + dy)}
	}
	switch d {
	case types.Right:
		rl.DrawTriangle(v(w.cellSize, half), v(half, 0), v(half, w.cellSize), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(0, half), v(half, w.cellSize), v(half, 0), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(half, w.cellSize), v(w.cellSize, half), v(0, half), rl.Yellow)
	case types.Up:
		rl.DrawTriangle(v(half, 0), v(0, half), v(w.cellSize, half), rl.Yellow)
	}
}

func (w *Window) drawStatus(grid types.Grid, st game.Status) {
	x := int32(borderPadding)
	y := borderPadding + int32(grid.Height)*w.cellSize + borderPadding
	rl.DrawText(ui.StatusLine(st), x, y, fontSize, tones[ui.ToneText])

	lines := ui.DeathLines(st)
	color := tones[ui.ToneAlert]
	if lines == nil {
		lines = []string{ui.HelpLine(w.dev)}
		color = rl.Gray
	}
	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i+1)*lineHeight, fontSize, color)
	}
}

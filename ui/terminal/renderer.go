package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"termsnake/game"
	"termsnake/game/board"
	"termsnake/game/types"
	"termsnake/ui"
)

var tones = map[ui.Tone]tcell.Style{
	ui.ToneEmpty: tcell.StyleDefault,
	ui.ToneWall:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
	ui.ToneApple: tcell.StyleDefault.Foreground(tcell.ColorRed),
	ui.ToneHead:  tcell.StyleDefault.Foreground(tcell.ColorLawnGreen).Bold(true),
	ui.ToneBody:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	ui.ToneText:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	ui.ToneAlert: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true),
}

// Renderer paints the board onto a tcell screen. Only cells reported dirty
// are touched between full repaints.
type Renderer struct {
	screen  tcell.Screen
	dev     bool
	resized atomic.Bool
	small   bool // last frame showed the too small notice
}

func NewRenderer(s tcell.Screen, dev bool) *Renderer {
	return &Renderer{screen: s, dev: dev}
}

// Resize makes the next frame a full repaint. A shrinking terminal drops
// the cells it cuts off, so they must be drawn again. Safe to call from the
// input goroutine.
func (r *Renderer) Resize() {
	r.resized.Store(true)
}

func (r *Renderer) Render(b *board.Board, st game.Status, full bool) error {
	if r.resized.Swap(false) || r.small {
		full = true
	}
	if err := CheckSize(r.screen, b.Grid()); err != nil {
		// Wait for the terminal to grow back; the board is repainted then.
		r.small = true
		b.Discard()
		r.screen.Clear()
		drawText(r.screen, 0, err.Error(), tones[ui.ToneAlert])
		r.screen.Show()
		return nil
	}
	r.small = false

	if full {
		r.screen.Clear()
		for p, c := range b.Cells() {
			r.drawCell(b, p, c)
		}
		b.Discard()
	} else {
		for p, c := range b.TakeDirty() {
			r.drawCell(b, p, c)
		}
	}
	r.drawStatus(b, st)
	r.screen.Show()
	return nil
}

func (r *Renderer) drawCell(b *board.Board, p types.Point, c types.CellState) {
	glyph, tone := ui.Glyph(b, p, c)
	x := p.X * ui.CellWidth
	for i, ch := range []rune(glyph) {
		r.screen.SetContent(x+i, p.Y, ch, nil, tones[tone])
	}
}

// drawStatus fills the rows under the board. The death message replaces
// the help line while the round is over.
func (r *Renderer) drawStatus(b *board.Board, st game.Status) {
	y := b.Height()
	drawText(r.screen, y, ui.StatusLine(st), tones[ui.ToneText])

	lines := ui.DeathLines(st)
	style := tones[ui.ToneAlert]
	if lines == nil {
		lines = []string{ui.HelpLine(r.dev), ""}
		style = tones[ui.ToneText]
	}
	for i, line := range lines {
		drawText(r.screen, y+1+i, line, style)
	}
}

// drawText writes text at the start of row y and blanks the rest of the row.
func drawText(s tcell.Screen, y int, text string, st tcell.Style) {
	runes := []rune(text)
	width, _ := s.Size()
	for x := 0; x < max(width, len(runes)); x++ {
		ch, style := ' ', tcell.StyleDefault
		if x < len(runes) {
			ch, style = runes[x], st
		}
		s.SetContent(x, y, ch, nil, style)
	}
}

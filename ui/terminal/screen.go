// Package terminal draws the game with tcell and reads keys from the same
// screen.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"termsnake/game/types"
	"termsnake/ui"
)

var (
	ErrNotATerminal   = errors.New("stdin and stdout must be a terminal")
	ErrScreenTooSmall = errors.New("terminal too small for the board")
)

// statusRows is how many text rows sit under the board.
const statusRows = 3

// Open checks that we run on a real terminal, takes it over and hides the
// cursor. The caller must Fini the returned screen.
func Open(grid types.Grid) (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotATerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if err := CheckSize(s, grid); err != nil {
		s.Fini()
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()
	return s, nil
}

// CheckSize fails when the screen cannot hold the board plus the status rows.
func CheckSize(s tcell.Screen, grid types.Grid) error {
	w, h := s.Size()
	needW, needH := grid.Width*ui.CellWidth, grid.Height+statusRows
	if w < needW || h < needH {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrScreenTooSmall, w, h, needW, needH)
	}
	return nil
}

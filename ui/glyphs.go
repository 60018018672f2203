// Package ui holds what the terminal and window frontends share: how each
// cell looks and the text shown around the board.
package ui

import (
	"fmt"

	"termsnake/game"
	"termsnake/game/board"
	"termsnake/game/types"
)

// CellWidth is how many screen columns one board cell occupies.
const CellWidth = 2

// Tone is the colour role of a drawn cell. Frontends map it to real colours.
type Tone int

const (
	ToneEmpty Tone = iota
	ToneWall
	ToneApple
	ToneHead
	ToneBody
	ToneText
	ToneAlert
)

var wallGlyphs = map[board.WallShape]string{
	board.TopLeft:     " ╔",
	board.TopRight:    "═╗",
	board.BottomLeft:  " ╚",
	board.BottomRight: "═╝",
	board.Horizontal:  "══",
	board.Vertical:    " ║",
}

// Glyph returns the two column text and tone for the cell at p.
func Glyph(b *board.Board, p types.Point, c types.CellState) (string, Tone) {
	switch c {
	case types.Wall:
		return wallGlyphs[b.WallShape(p)], ToneWall
	case types.Apple:
		return " ■", ToneApple
	case types.SnakeHead:
		return "██", ToneHead
	case types.SnakeBody:
		return "██", ToneBody
	default:
		return "  ", ToneEmpty
	}
}

// StatusLine is the one line summary shown under the board.
func StatusLine(st game.Status) string {
	return fmt.Sprintf("score %d  best %d  length %d  round %d", st.Score, st.HighScore, st.Length, st.Round)
}

// DeathLines is the game over message, empty while playing.
func DeathLines(st game.Status) []string {
	if st.State != game.GameOver {
		return nil
	}
	return []string{
		fmt.Sprintf("GAME OVER: the snake %s with %d apples", st.Reason, st.Score),
		"press r to play again, q to quit",
	}
}

// HelpLine lists the controls.
func HelpLine(dev bool) string {
	if dev {
		return "wasd/arrows move  ijkl apple  q quit"
	}
	return "wasd/arrows move  q quit"
}

package types

import (
	"errors"
	"fmt"
	"time"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

type Point struct {
	X, Y int
}

// NoPoint marks an absent position, e.g. no apple on the board.
var NoPoint = Point{X: -1, Y: -1}

func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CellState is the logical content of a single board cell.
type CellState uint8

const (
	Empty CellState = iota
	Wall
	Apple
	SnakeBody
	SnakeHead
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Apple:
		return "apple"
	case SnakeBody:
		return "snake-body"
	case SnakeHead:
		return "snake-head"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// IsSnake reports whether the cell is part of the snake.
func (c CellState) IsSnake() bool {
	return c == SnakeBody || c == SnakeHead
}

// Direction is a cardinal direction of travel
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Delta returns the (dx, dy) offset of one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// WrapMode selects which board edges are open. A wrapped axis has no walls
// on its edges and movement across it reappears on the opposite side.
type WrapMode uint8

const (
	WrapNone       WrapMode = 0
	WrapHorizontal WrapMode = 1
	WrapVertical   WrapMode = 2
	WrapBoth                = WrapHorizontal | WrapVertical
)

func (w WrapMode) Horizontal() bool { return w&WrapHorizontal != 0 }
func (w WrapMode) Vertical() bool   { return w&WrapVertical != 0 }

func (w WrapMode) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapHorizontal:
		return "horizontal"
	case WrapVertical:
		return "vertical"
	case WrapBoth:
		return "both"
	default:
		return fmt.Sprintf("wrap(%d)", uint8(w))
	}
}

// ParseWrapMode accepts the values printed by WrapMode.String.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "none":
		return WrapNone, nil
	case "horizontal", "h":
		return WrapHorizontal, nil
	case "vertical", "v":
		return WrapVertical, nil
	case "both":
		return WrapBoth, nil
	}
	return WrapNone, fmt.Errorf("%w: %q", ErrInvalidWrap, s)
}

// Key is a decoded, frontend independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyRestart
	KeyAppleUp
	KeyAppleDown
	KeyAppleLeft
	KeyAppleRight
)

// Direction maps movement and apple keys to a direction, None otherwise.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp, KeyAppleUp:
		return Up
	case KeyDown, KeyAppleDown:
		return Down
	case KeyLeft, KeyAppleLeft:
		return Left
	case KeyRight, KeyAppleRight:
		return Right
	default:
		return None
	}
}

func (k Key) IsMove() bool {
	return k >= KeyUp && k <= KeyRight
}

func (k Key) IsApple() bool {
	return k >= KeyAppleUp && k <= KeyAppleRight
}

// CollisionType represents the reason a round ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	OutOfBounds
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "hit the wall"
	case SelfCollision:
		return "bit itself"
	case OutOfBounds:
		return "left the board"
	case BoardFull:
		return "filled the board"
	default:
		return "unknown"
	}
}

var (
	ErrBoardTooSmall = errors.New("board too small")
	ErrInvalidWrap   = errors.New("invalid wrap mode")
	ErrInvalidFrame  = errors.New("frame time must be positive")
)

// Smallest board that still has a 3x3 interior for the starting snake.
const (
	MinWidth  = 5
	MinHeight = 5
)

// Game constants
const (
	DefaultWidth     = 50
	DefaultHeight    = 20
	DefaultFrameTime = 100 * time.Millisecond
	StartLength      = 2
)

// Config holds the settings of one session.
type Config struct {
	Grid      Grid
	Wrap      WrapMode
	FrameTime time.Duration
	Seed      uint64 // 0 means seed from the clock
	DevKeys   bool   // enables the apple nudge keys
}

func DefaultConfig() Config {
	return Config{
		Grid:      Grid{Width: DefaultWidth, Height: DefaultHeight},
		Wrap:      WrapNone,
		FrameTime: DefaultFrameTime,
	}
}

func (c Config) Validate() error {
	if c.Grid.Width < MinWidth || c.Grid.Height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, c.Grid.Width, c.Grid.Height, MinWidth, MinHeight)
	}
	if c.Wrap&^WrapBoth != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWrap, c.Wrap)
	}
	if c.FrameTime <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFrame, c.FrameTime)
	}
	return nil
}

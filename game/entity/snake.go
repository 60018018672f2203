package entity

import (
	"termsnake/game/board"
	"termsnake/game/types"
)

// Snake is the ordered list of occupied cells, tail first and head last.
type Snake struct {
	Body      []types.Point
	direction types.Direction
}

// NewSnake lays out a straight snake of the given length ending at head,
// trailing away opposite to dir. Nothing is drawn until Place.
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	dx, dy := dir.Opposite().Delta()
	body := make([]types.Point, length)
	for i := 0; i < length; i++ {
		// body[length-1] is the head
		step := length - 1 - i
		body[i] = head.Add(dx*step, dy*step)
	}
	return &Snake{Body: body, direction: dir}
}

// Place marks every segment on the board.
func (s *Snake) Place(b *board.Board) {
	for i, p := range s.Body {
		if i == len(s.Body)-1 {
			b.Mark(p, types.SnakeHead)
		} else {
			b.Mark(p, types.SnakeBody)
		}
	}
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// GetHead returns the head position. Calling it on an empty snake is a
// programming error.
func (s *Snake) GetHead() types.Point {
	if len(s.Body) == 0 {
		panic("snake: head of empty snake")
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Point {
	if len(s.Body) == 0 {
		panic("snake: tail of empty snake")
	}
	return s.Body[0]
}

func (s *Snake) Contains(p types.Point) bool {
	for _, q := range s.Body {
		if q == p {
			return true
		}
	}
	return false
}

// Direction is the direction the snake travelled on its last move.
func (s *Snake) Direction() types.Direction {
	return s.direction
}

// CanTurn reports whether dir is an acceptable intent: no reversal of the
// current travel direction.
func (s *Snake) CanTurn(dir types.Direction) bool {
	return dir != types.None && dir != s.direction.Opposite()
}

// ComputeNext returns the cell the head would enter moving in dir. On a
// wrapped axis the result folds onto the opposite edge; otherwise it may
// fall outside the grid.
func (s *Snake) ComputeNext(dir types.Direction, grid types.Grid, wrap types.WrapMode) types.Point {
	dx, dy := dir.Delta()
	next := s.GetHead().Add(dx, dy)
	if wrap.Horizontal() {
		next.X = (next.X + grid.Width) % grid.Width
	}
	if wrap.Vertical() {
		next.Y = (next.Y + grid.Height) % grid.Height
	}
	return next
}

// Move pushes next as the new head in dir. Unless grew, the tail is popped
// and its cell cleared. Legality is the caller's job.
func (s *Snake) Move(b *board.Board, next types.Point, dir types.Direction, grew bool) {
	prevHead := s.GetHead()
	s.Body = append(s.Body, next)
	s.direction = dir

	if !grew {
		tail := s.Body[0]
		s.removeTail()
		// when the head moved into the vacating tail the cell stays occupied
		if tail != next {
			b.Mark(tail, types.Empty)
		}
	}
	if prevHead != next && s.Contains(prevHead) {
		b.Mark(prevHead, types.SnakeBody)
	}
	b.Mark(next, types.SnakeHead)
}

func (s *Snake) removeTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

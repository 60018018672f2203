package manager

import (
	"termsnake/game/board"
	"termsnake/game/entity"
	"termsnake/game/types"
)

// Outcome is the verdict on a candidate head cell.
type Outcome struct {
	Collision types.CollisionType
	Eats      bool
}

// Legal reports whether the snake may move into the cell.
func (o Outcome) Legal() bool {
	return o.Collision == types.NoCollision
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Check classifies a move of snake's head into next. The order matters:
// leaving the grid, then walls, then the snake itself, then apples.
func (cm *CollisionManager) Check(b *board.Board, snake *entity.Snake, next types.Point) Outcome {
	if !b.InBounds(next) {
		return Outcome{Collision: types.OutOfBounds}
	}

	switch b.At(next) {
	case types.Wall:
		return Outcome{Collision: types.WallCollision}
	case types.SnakeBody, types.SnakeHead:
		if cm.isVacatingTail(snake, next) {
			return Outcome{}
		}
		return Outcome{Collision: types.SelfCollision}
	case types.Apple:
		return Outcome{Eats: true}
	}
	return Outcome{}
}

// isVacatingTail reports whether next is the tail cell that moves away on
// this tick. A tail cell never holds an apple, so the snake is not growing.
func (cm *CollisionManager) isVacatingTail(snake *entity.Snake, next types.Point) bool {
	return snake.Len() > 1 && next == snake.GetTail()
}

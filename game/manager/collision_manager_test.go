package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"termsnake/game/board"
	"termsnake/game/entity"
	"termsnake/game/types"
)

func TestCheck(t *testing.T) {
	b := board.New(types.Grid{Width: 10, Height: 10}, types.WrapNone)
	s := &entity.Snake{Body: []types.Point{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}}}
	s.Place(b)
	b.Mark(types.Point{X: 2, Y: 2}, types.Apple)
	cm := NewCollisionManager()

	tests := []struct {
		name string
		next types.Point
		want Outcome
	}{
		{"outside", types.Point{X: -1, Y: 3}, Outcome{Collision: types.OutOfBounds}},
		{"wall", types.Point{X: 0, Y: 3}, Outcome{Collision: types.WallCollision}},
		{"body", types.Point{X: 4, Y: 4}, Outcome{Collision: types.SelfCollision}},
		{"tail", types.Point{X: 3, Y: 4}, Outcome{}},
		{"apple", types.Point{X: 2, Y: 2}, Outcome{Eats: true}},
		{"empty", types.Point{X: 7, Y: 7}, Outcome{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.Check(b, s, tt.next)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Collision == types.NoCollision, got.Legal())
		})
	}
}

package manager

import (
	log "github.com/sirupsen/logrus"

	"termsnake/game/board"
	"termsnake/game/types"
)

// Rand is the randomness source used for apple placement.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// AppleManager tracks the single apple on the board.
type AppleManager struct {
	rng   Rand
	apple types.Point
	free  []types.Point
}

func NewAppleManager(rng Rand) *AppleManager {
	return &AppleManager{
		rng:   rng,
		apple: types.NoPoint,
	}
}

// Position returns the apple cell, or false when there is no apple.
func (am *AppleManager) Position() (types.Point, bool) {
	return am.apple, am.apple != types.NoPoint
}

// Reset forgets the apple without touching any board, used when the board
// itself is rebuilt.
func (am *AppleManager) Reset() {
	am.apple = types.NoPoint
}

// Relocate moves the apple to a uniformly chosen empty interior cell. Walls,
// the border ring and the snake are never chosen. It returns false when no
// such cell is left, in which case the board has no apple.
func (am *AppleManager) Relocate(b *board.Board) bool {
	am.free = am.free[:0]
	for p, c := range b.Cells() {
		if c == types.Empty && b.Interior(p) {
			am.free = append(am.free, p)
		}
	}

	prev := am.apple
	// after a meal the head already sits on the old apple cell
	if prev != types.NoPoint && b.InBounds(prev) && b.At(prev) == types.Apple {
		b.Mark(prev, types.Empty)
	}

	if len(am.free) == 0 {
		am.apple = types.NoPoint
		log.WithField("previous", prev).Debug("no free cell left for the apple")
		return false
	}

	am.apple = am.free[am.rng.Intn(len(am.free))]
	b.Mark(am.apple, types.Apple)
	log.WithFields(log.Fields{
		"previous": prev,
		"apple":    am.apple,
		"choices":  len(am.free),
	}).Debug("apple relocated")
	return true
}

// Nudge shifts the apple one cell in dir when the target is an empty
// interior cell. It is a development aid for checking redraws.
func (am *AppleManager) Nudge(b *board.Board, dir types.Direction) bool {
	if am.apple == types.NoPoint {
		return false
	}
	dx, dy := dir.Delta()
	next := am.apple.Add(dx, dy)
	if next == am.apple || !b.Interior(next) || b.At(next) != types.Empty {
		return false
	}
	b.Mark(am.apple, types.Empty)
	b.Mark(next, types.Apple)
	am.apple = next
	return true
}

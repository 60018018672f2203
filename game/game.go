// Package game ties the board, the snake and the apple together into the
// per-tick state machine and drives it at a fixed frame rate.
package game

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"termsnake/game/board"
	"termsnake/game/entity"
	"termsnake/game/manager"
	"termsnake/game/types"
)

// State is the phase of the session.
type State int

const (
	Playing State = iota
	GameOver
	Restarting
	Quit
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	case Restarting:
		return "restarting"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Status is the snapshot a renderer needs besides the board.
type Status struct {
	State     State
	Reason    types.CollisionType
	Score     int
	HighScore int
	Length    int
	Round     int
	Heading   types.Direction
	Session   string
}

type Game struct {
	UUID   string
	Config types.Config
	Board  *board.Board
	Snake  *entity.Snake

	state  State
	reason types.CollisionType
	intent types.Direction

	apples     *manager.AppleManager
	collisions *manager.CollisionManager
	stats      *manager.StateManager
	log        *log.Entry
}

// NewGame validates cfg and sets up the first round.
func NewGame(cfg types.Config, rng manager.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := uuid.New().String()
	g := &Game{
		UUID:       id,
		Config:     cfg,
		apples:     manager.NewAppleManager(rng),
		collisions: manager.NewCollisionManager(),
		stats:      manager.NewStateManager(),
		log:        log.WithField("session", id),
	}
	g.reset()
	g.log.WithFields(log.Fields{
		"grid":  cfg.Grid,
		"wrap":  cfg.Wrap,
		"frame": cfg.FrameTime,
	}).Info("session started")
	return g, nil
}

// reset rebuilds the board with a two cell snake in the centre heading
// right and a fresh apple.
func (g *Game) reset() {
	g.Board = board.New(g.Config.Grid, g.Config.Wrap)
	g.Snake = entity.NewSnake(g.Config.Grid.Center(), types.Right, types.StartLength)
	g.Snake.Place(g.Board)
	g.intent = types.Right
	g.apples.Reset()
	g.apples.Relocate(g.Board)
	g.state = Playing
	g.reason = types.NoCollision
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Apple() (types.Point, bool) {
	return g.apples.Position()
}

func (g *Game) Stats() *manager.StateManager {
	return g.stats
}

func (g *Game) Status() Status {
	return Status{
		State:     g.state,
		Reason:    g.reason,
		Score:     g.stats.Score(),
		HighScore: g.stats.GetHighScore(),
		Length:    g.Snake.Len(),
		Round:     g.stats.Rounds(),
		Heading:   g.Snake.Direction(),
		Session:   g.UUID,
	}
}

// HandleKeys applies queued keys oldest first. A movement key latches its
// direction unless it reverses the direction travelled on the last tick.
func (g *Game) HandleKeys(keys []types.Key) {
	for _, k := range keys {
		switch {
		case k == types.KeyQuit:
			g.log.WithField("state", g.state).Info("quit requested")
			g.state = Quit
			return
		case k == types.KeyRestart && g.state == GameOver:
			g.state = Restarting
		case g.state != Playing:
		case k.IsMove():
			if d := k.Direction(); g.Snake.CanTurn(d) {
				g.intent = d
			}
		case k.IsApple() && g.Config.DevKeys:
			g.apples.Nudge(g.Board, k.Direction())
		}
	}
}

// Tick advances the game by one frame.
func (g *Game) Tick() {
	switch g.state {
	case Restarting:
		g.restart()
		return
	case Playing:
	default:
		return
	}

	next := g.Snake.ComputeNext(g.intent, g.Board.Grid(), g.Board.Wrap())
	out := g.collisions.Check(g.Board, g.Snake, next)
	if !out.Legal() {
		g.endRound(out.Collision)
		return
	}

	g.Snake.Move(g.Board, next, g.intent, out.Eats)
	if !out.Eats {
		return
	}
	g.stats.AddPoint()
	if !g.apples.Relocate(g.Board) {
		g.endRound(types.BoardFull)
	}
}

func (g *Game) endRound(reason types.CollisionType) {
	g.state = GameOver
	g.reason = reason
	rec := g.stats.EndRound(g.Snake.Len(), reason)
	g.log.WithFields(log.Fields{
		"reason":   reason,
		"score":    rec.Score,
		"length":   rec.Length,
		"duration": rec.Duration(),
		"head":     g.Snake.GetHead(),
	}).Info("round over")
}

func (g *Game) restart() {
	g.stats.StartRound()
	g.reset()
	g.log.WithField("round", g.stats.Rounds()).Info("round restarted")
}

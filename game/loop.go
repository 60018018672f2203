package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"termsnake/game/board"
	"termsnake/game/types"
)

// ErrInputClosed is returned by an Input whose key stream ended.
var ErrInputClosed = errors.New("input stream closed")

// Input hands over every key decoded since the previous call without
// blocking.
type Input interface {
	Drain() ([]types.Key, error)
}

// Renderer draws the board. With full set it paints every cell, otherwise
// only what TakeDirty yields. A renderer may also repaint fully on its own,
// e.g. after its screen was resized. Either way it leaves the dirty set empty.
type Renderer interface {
	Render(b *board.Board, st Status, full bool) error
}

// Loop runs the game at a fixed tick rate. It never coalesces or skips
// frames: a slow frame is simply followed by the next one immediately.
type Loop struct {
	game     *Game
	input    Input
	renderer Renderer
	frame    time.Duration
	painted  *board.Board

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func NewLoop(g *Game, in Input, r Renderer) *Loop {
	return &Loop{
		game:     g,
		input:    in,
		renderer: r,
		frame:    g.Config.FrameTime,
		now:      time.Now,
		after:    time.After,
	}
}

// Run ticks until the player quits, ctx is done, or the input or renderer
// fails.
func (l *Loop) Run(ctx context.Context) error {
	for {
		start := l.now()
		if err := l.Step(); err != nil {
			return err
		}
		if l.game.State() == Quit {
			return nil
		}
		wait := l.frame - l.now().Sub(start)
		if wait <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.after(wait):
		}
	}
}

// Step runs one frame: drain input, tick, render.
func (l *Loop) Step() error {
	keys, err := l.input.Drain()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	l.game.HandleKeys(keys)
	if l.game.State() == Quit {
		return nil
	}
	l.game.Tick()

	// a restart swaps the board, which needs a full repaint
	full := l.painted != l.game.Board
	l.game.log.WithFields(log.Fields{
		"dirty": l.game.Board.DirtyCount(),
		"full":  full,
	}).Trace("frame")
	if err := l.renderer.Render(l.game.Board, l.game.Status(), full); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	l.painted = l.game.Board
	return nil
}

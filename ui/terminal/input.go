package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"termsnake/game"
	"termsnake/game/types"
)

// queueSize bounds the keys buffered between two ticks. The reader blocks
// once it is full, which only happens if the loop stalls.
const queueSize = 256

// Input reads key events on its own goroutine and hands them to the game
// loop in arrival order.
type Input struct {
	keys chan types.Key
	done chan struct{}
}

// NewInput starts the reader. It ends when the screen is finalized.
// onResize, if set, runs on the reader goroutine after every resize.
func NewInput(s tcell.Screen, onResize func()) *Input {
	in := &Input{
		keys: make(chan types.Key, queueSize),
		done: make(chan struct{}),
	}
	go in.read(s, onResize)
	return in
}

func (in *Input) read(s tcell.Screen, onResize func()) {
	defer close(in.done)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			if onResize != nil {
				onResize()
			}
		case *tcell.EventKey:
			if k := TranslateKey(ev); k != types.KeyNone {
				in.keys <- k
			}
		}
	}
}

// Drain returns every key queued since the last call without blocking.
// Once the reader is gone and the queue is empty it reports
// game.ErrInputClosed.
func (in *Input) Drain() ([]types.Key, error) {
	var keys []types.Key
	for {
		select {
		case k := <-in.keys:
			keys = append(keys, k)
			continue
		default:
		}
		if len(keys) == 0 {
			select {
			case <-in.done:
				if len(in.keys) == 0 {
					return nil, game.ErrInputClosed
				}
				continue
			default:
			}
		}
		return keys, nil
	}
}

// TranslateKey maps a tcell key event to a game key.
func TranslateKey(ev *tcell.EventKey) types.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return types.KeyQuit
	case tcell.KeyEnter:
		return types.KeyRestart
	case tcell.KeyRune:
		return runeKey(unicode.ToLower(ev.Rune()))
	}
	return types.KeyNone
}

func runeKey(r rune) types.Key {
	switch r {
	case 'w':
		return types.KeyUp
	case 's':
		return types.KeyDown
	case 'a':
		return types.KeyLeft
	case 'd', 'f':
		return types.KeyRight
	case 'q':
		return types.KeyQuit
	case 'r':
		return types.KeyRestart
	case 'i':
		return types.KeyAppleUp
	case 'k':
		return types.KeyAppleDown
	case 'j':
		return types.KeyAppleLeft
	case 'l':
		return types.KeyAppleRight
	}
	return types.KeyNone
}

package terminal

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsnake/game"
	"termsnake/game/types"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want types.Key
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.KeyUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.KeyLeft},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), types.KeyUp},
		{"shift S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), types.KeyDown},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), types.KeyLeft},
		{"f", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), types.KeyRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), types.KeyQuit},
		{"alt q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), types.KeyQuit},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), types.KeyQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), types.KeyQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.KeyQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), types.KeyRestart},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), types.KeyRestart},
		{"i", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), types.KeyAppleUp},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), types.KeyAppleLeft},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), types.KeyAppleDown},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), types.KeyAppleRight},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), types.KeyNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), types.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.ev))
		})
	}
}

func TestInput_DeliversKeysInOrder(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	in := NewInput(s, nil)
	keys, err := in.Drain()
	require.NoError(t, err)
	assert.Empty(t, keys, "drain never blocks")

	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)

	var got []types.Key
	require.Eventually(t, func() bool {
		keys, err := in.Drain()
		if err != nil {
			return false
		}
		got = append(got, keys...)
		return len(got) >= 3
	}, time.Second, time.Millisecond)
	assert.Equal(t, []types.Key{types.KeyUp, types.KeyLeft, types.KeyRestart}, got)
}

func TestInput_ClosedAfterFini(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())

	in := NewInput(s, nil)
	s.Fini()

	require.Eventually(t, func() bool {
		_, err := in.Drain()
		return err != nil
	}, time.Second, time.Millisecond)

	_, err := in.Drain()
	assert.ErrorIs(t, err, game.ErrInputClosed)
}

func TestInput_ReportsResize(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	var resizes atomic.Int32
	in := NewInput(s, func() { resizes.Add(1) })

	s.SetSize(20, 10)
	require.NoError(t, s.PostEvent(tcell.NewEventResize(20, 10)))
	require.Eventually(t, func() bool { return resizes.Load() > 0 }, time.Second, time.Millisecond)

	keys, err := in.Drain()
	require.NoError(t, err)
	assert.Empty(t, keys, "a resize is not a key")
}

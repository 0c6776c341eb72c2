package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrapit/config"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 3
	return game.NewSession(cfg.NewPit(), time.Second, nil)
}

func TestOrigin(t *testing.T) {
	x, y := origin(80, 24, 10, 20)
	assert.Equal(t, 30, x)
	assert.Equal(t, 1, y)

	x, y = origin(10, 5, 10, 20)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestInputMapping(t *testing.T) {
	s := newInputSystem(nil, nil, nil)

	tests := []struct {
		key  tcell.Key
		r    rune
		want game.Action
	}{
		{tcell.KeyLeft, 0, game.ActionLeft},
		{tcell.KeyDown, 0, game.ActionSoftDrop},
		{tcell.KeyCtrlC, 0, game.ActionQuit},
		{tcell.KeyRune, 'k', game.ActionRotate},
		{tcell.KeyRune, 'q', game.ActionQuit},
		{tcell.KeyRune, 'x', game.ActionNone},
		{tcell.KeyTab, 0, game.ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.action(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestInputSystemDrainsWithoutBlocking(t *testing.T) {
	session := newTestSession(t)
	events := make(chan tcell.Event, 4)
	events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	scheduler := loop.NewScheduler()
	scheduler.Register(newInputSystem(nil, events, session))
	scheduler.Once(time.Millisecond)

	assert.Equal(t, 2, session.Pending())
	assert.Empty(t, events)
}

func TestRenderDrawsPieceAndBorder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	session := newTestSession(t)
	r := &renderSystem{screen: screen, session: session}
	r.Execute(&loop.Frame{})

	p := session.Pit()
	originX, originY := origin(80, 24, p.Width(), p.Height())

	for _, c := range p.ActivePiece() {
		if c.Y < 0 {
			continue
		}
		mainc, _, _, _ := screen.GetContent(originX+c.X*cellWidth, originY+c.Y)
		assert.Equal(t, '█', mainc, "cell %v", c)
	}

	mainc, _, _, _ := screen.GetContent(originX-1, originY)
	assert.Equal(t, '│', mainc)
	mainc, _, _, _ = screen.GetContent(originX, originY+p.Height())
	assert.Equal(t, '─', mainc)
}

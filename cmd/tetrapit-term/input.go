package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
)

var defaultKeys = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.ActionLeft,
	tcell.KeyRight:  game.ActionRight,
	tcell.KeyUp:     game.ActionRotate,
	tcell.KeyDown:   game.ActionSoftDrop,
	tcell.KeyEscape: game.ActionQuit,
	tcell.KeyCtrlC:  game.ActionQuit,
}

var defaultRunes = map[rune]game.Action{
	'h': game.ActionLeft,
	'l': game.ActionRight,
	'k': game.ActionRotate,
	'j': game.ActionSoftDrop,
	'q': game.ActionQuit,
	'Q': game.ActionQuit,
}

// inputSystem drains terminal events that arrived since the last frame and
// queues the matching actions. Events are read here, not in the polling
// goroutine, so the pit is only ever touched by the scheduler.
type inputSystem struct {
	screen  tcell.Screen
	events  <-chan tcell.Event
	session *game.Session
	keys    *game.Keymap[tcell.Key]
	runes   *game.Keymap[rune]
}

func newInputSystem(screen tcell.Screen, events <-chan tcell.Event, session *game.Session) *inputSystem {
	return &inputSystem{
		screen:  screen,
		events:  events,
		session: session,
		keys:    game.NewKeymap(defaultKeys),
		runes:   game.NewKeymap(defaultRunes),
	}
}

func (s *inputSystem) Execute(frame *loop.Frame) {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.session.Push(s.action(ev.Key(), ev.Rune()))
			case *tcell.EventResize:
				frame.Commands.Defer(s.screen.Sync)
			}
		default:
			return
		}
	}
}

func (s *inputSystem) action(key tcell.Key, r rune) game.Action {
	if key == tcell.KeyRune {
		return s.runes.Lookup(r)
	}
	return s.keys.Lookup(key)
}

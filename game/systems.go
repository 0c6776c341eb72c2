package game

import "github.com/plus3/tetrapit/loop"

// ControlSystem applies the actions queued since the previous frame.
type ControlSystem struct {
	Session *Session
}

func (s *ControlSystem) Execute(frame *loop.Frame) {
	s.Session.drainActions()
}

// GravitySystem advances the gravity timer by the frame's delta time.
type GravitySystem struct {
	Session *Session
}

func (s *GravitySystem) Execute(frame *loop.Frame) {
	s.Session.Advance(frame.DeltaTime)
}

// EventSystem hands the locks of this frame to the session's listeners once
// every system has run.
type EventSystem struct {
	Session *Session
}

func (s *EventSystem) Execute(frame *loop.Frame) {
	for _, result := range s.Session.takeLocks() {
		frame.Commands.Defer(func() {
			s.Session.notify(result)
		})
	}
}

// Register adds the session systems to scheduler in the order they must run.
func Register(scheduler *loop.Scheduler, session *Session) {
	scheduler.Register(&ControlSystem{Session: session})
	scheduler.Register(&GravitySystem{Session: session})
	scheduler.Register(&EventSystem{Session: session})
}

// Package game connects input adapters to a pit. A Session turns actions and
// elapsed time into pit operations; the systems in this package run it from
// a loop.Scheduler.
package game

import (
	"io"
	"log"
	"time"

	"github.com/plus3/tetrapit/pit"
)

// Counters summarizes what happened during a session.
type Counters struct {
	Moves        int
	Rotations    int
	Drops        int
	Locks        int
	LinesCleared int
	Discarded    int
	Obstructed   int
}

// Session owns the pit for one game and everything needed to drive it:
// queued actions, the gravity timer and lock listeners.
type Session struct {
	pit       *pit.Pit
	gravity   time.Duration
	elapsed   time.Duration
	queue     []Action
	locks     []pit.LockResult
	listeners []func(pit.LockResult)
	counters  Counters
	quit      bool
	logger    *log.Logger
}

// NewSession wraps p. The piece falls one row every gravity interval. A nil
// logger discards output.
func NewSession(p *pit.Pit, gravity time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		pit:     p,
		gravity: gravity,
		logger:  logger,
	}
}

func (s *Session) Pit() *pit.Pit { return s.pit }

func (s *Session) Gravity() time.Duration { return s.gravity }

// Elapsed returns the time accumulated towards the next gravity step.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

func (s *Session) Counters() Counters { return s.counters }

// Quit reports whether a quit action has been applied.
func (s *Session) Quit() bool { return s.quit }

// OnLock registers fn to be called for every lock, in registration order.
func (s *Session) OnLock(fn func(pit.LockResult)) {
	s.listeners = append(s.listeners, fn)
}

// Push queues an action for the next ControlSystem run.
func (s *Session) Push(action Action) {
	if action == ActionNone {
		return
	}
	s.queue = append(s.queue, action)
}

// Pending returns the number of queued actions.
func (s *Session) Pending() int { return len(s.queue) }

// Apply performs one action immediately and reports whether the pit changed.
// A soft drop always changes the pit: it either moves or locks the piece.
func (s *Session) Apply(action Action) bool {
	switch action {
	case ActionLeft:
		return s.count(s.pit.MovePieceLeft(), &s.counters.Moves)
	case ActionRight:
		return s.count(s.pit.MovePieceRight(), &s.counters.Moves)
	case ActionRotate:
		return s.count(s.pit.RotatePiece(), &s.counters.Rotations)
	case ActionSoftDrop:
		s.moveDown()
		return true
	case ActionQuit:
		s.quit = true
		s.logger.Println("quit requested")
	}
	return false
}

func (s *Session) count(changed bool, counter *int) bool {
	if changed {
		*counter++
	}
	return changed
}

// Advance adds dt to the gravity timer and moves the piece down once the
// interval has been reached.
func (s *Session) Advance(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed >= s.gravity {
		s.moveDown()
	}
}

// moveDown drops the piece one row and resets the gravity timer.
func (s *Session) moveDown() {
	s.elapsed = 0
	s.counters.Drops++

	result, locked := s.pit.MovePieceDown()
	if !locked {
		return
	}

	s.counters.Locks++
	s.counters.LinesCleared += len(result.Cleared)
	s.counters.Discarded += result.Discarded
	if result.Obstructed {
		s.counters.Obstructed++
	}
	s.locks = append(s.locks, result)

	if len(result.Cleared) > 0 {
		s.logger.Printf("cleared rows %v", result.Cleared)
	}
	if result.Discarded > 0 {
		s.logger.Printf("dropped %d cells locked above the pit", result.Discarded)
	}
	if result.Obstructed {
		s.logger.Printf("spawned %s over locked blocks", result.Spawned)
	}
}

func (s *Session) drainActions() {
	queue := s.queue
	s.queue = nil
	for _, action := range queue {
		s.Apply(action)
	}
}

func (s *Session) takeLocks() []pit.LockResult {
	locks := s.locks
	s.locks = nil
	return locks
}

func (s *Session) notify(result pit.LockResult) {
	for _, fn := range s.listeners {
		fn(result)
	}
}

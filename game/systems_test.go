package game_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
	"github.com/plus3/tetrapit/pit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemsDriveSession(t *testing.T) {
	s := newSession(t)
	scheduler := loop.NewScheduler()
	game.Register(scheduler, s)

	start := s.Pit().ActivePiece()
	s.Push(game.ActionLeft)
	s.Push(game.ActionLeft)
	s.Push(game.ActionRight)

	scheduler.Once(0)

	assert.Zero(t, s.Pending())
	assert.Equal(t, start.Translate(-1, 0), s.Pit().ActivePiece())
}

func TestEventSystemDefersListeners(t *testing.T) {
	s := newSession(t)
	scheduler := loop.NewScheduler()
	game.Register(scheduler, s)

	var locks []pit.LockResult
	var frameOfLock int64 = -1
	s.OnLock(func(result pit.LockResult) {
		locks = append(locks, result)
	})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if len(locks) == 0 {
			frameOfLock = frame.Index
		}
	}))

	landed := s.Pit().ActivePiece().Translate(0, 19)
	for i := 0; i < 19; i++ {
		scheduler.Once(time.Second)
	}
	require.Empty(t, locks)

	scheduler.Once(time.Second)

	require.Len(t, locks, 1)
	assert.Equal(t, landed, locks[0].Locked)
	// The probe system ran after the lock but before the flush.
	assert.Equal(t, int64(19), frameOfLock)

	scheduler.Once(0)
	assert.Len(t, locks, 1)
}

func TestSystemStatsNames(t *testing.T) {
	s := newSession(t)
	scheduler := loop.NewScheduler()
	game.Register(scheduler, s)
	scheduler.Once(0)

	var names []string
	for _, st := range scheduler.Stats().Systems {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"ControlSystem", "GravitySystem", "EventSystem"}, names)
}

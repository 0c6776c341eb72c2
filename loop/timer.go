package loop

import "time"

// FrameTimer measures wall time between frames for adapters whose host loop
// does not report it.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{
		lastFrameTime: now(),
		now:           now,
	}
}

// Delta returns the time since the previous call, or since the timer was
// created on the first call.
func (ft *FrameTimer) Delta() time.Duration {
	now := ft.now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}

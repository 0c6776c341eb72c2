package loop

import "time"

// Frame is handed to every system during a single scheduler tick.
type Frame struct {
	Index     int64
	DeltaTime time.Duration
	Commands  *Commands
}

func newFrame(index int64, dt time.Duration, commands *Commands) *Frame {
	return &Frame{
		Index:     index,
		DeltaTime: dt,
		Commands:  commands,
	}
}

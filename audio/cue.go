// Package audio plays short synthesized cues for pit events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/tetrapit/pit"
)

// Cue identifies a sound.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueObstructed
)

var cueNames = [...]string{"lock", "clear", "obstructed"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CueFor picks the cue announcing a lock.
func CueFor(result pit.LockResult) Cue {
	switch {
	case result.Obstructed:
		return CueObstructed
	case len(result.Cleared) > 0:
		return CueClear
	default:
		return CueLock
	}
}

// Sound builds the streamer for cue. lines only affects CueClear, which
// plays one rising note per cleared row.
func Sound(cue Cue, lines int, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueClear:
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		if lines < 1 {
			lines = 1
		}
		if lines > len(notes) {
			lines = len(notes)
		}
		seq := make([]beep.Streamer, lines)
		for i := range seq {
			seq[i] = NewTone(notes[i], 70*time.Millisecond, WaveSquare, rate)
		}
		return withVolume(beep.Seq(seq...), 0.25)
	case CueObstructed:
		return withVolume(NewTone(110, 250*time.Millisecond, WaveSaw, rate), 0.3)
	default:
		return withVolume(NewTone(220, 40*time.Millisecond, WaveSine, rate), 0.4)
	}
}

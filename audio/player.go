package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/tetrapit/pit"
)

const sampleRate = beep.SampleRate(48000)

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(cue Cue, lines int)
	Close()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue, int) {}
func (Silent) Close()        {}

// Speaker plays cues on the default audio device through a single mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker() *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device. It is safe to call more than once.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) Play(cue Cue, lines int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Add(Sound(cue, lines, sampleRate))
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// LockListener returns a lock callback that plays the matching cue on p.
func LockListener(p Player) func(pit.LockResult) {
	return func(result pit.LockResult) {
		p.Play(CueFor(result), len(result.Cleared))
	}
}

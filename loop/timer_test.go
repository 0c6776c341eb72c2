package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimerDelta(t *testing.T) {
	clock := time.Unix(1000, 0)
	ft := newFrameTimer(func() time.Time { return clock })

	clock = clock.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, ft.Delta())

	clock = clock.Add(time.Second)
	assert.Equal(t, time.Second, ft.Delta())

	assert.Zero(t, ft.Delta())
}

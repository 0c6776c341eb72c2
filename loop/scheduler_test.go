package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetrapit/loop"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    time.Duration
	LastIndex    int64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	s.LastIndex = frame.Index
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(&orderSystem{name: "input", log: &order})
		scheduler.Register(&orderSystem{name: "gravity", log: &order})
		scheduler.Register(&orderSystem{name: "render", log: &order})

		scheduler.Once(time.Millisecond)
		scheduler.Once(time.Millisecond)

		expected := []string{"input", "gravity", "render", "input", "gravity", "render"}
		if len(order) != len(expected) {
			t.Fatalf("expected %d executions, got %d", len(expected), len(order))
		}
		for i := range expected {
			if order[i] != expected[i] {
				t.Errorf("execution %d: expected %s, got %s", i, expected[i], order[i])
			}
		}
	})

	t.Run("delta time and frame index", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(250 * time.Millisecond)
		scheduler.Once(500 * time.Millisecond)

		if counter.ExecuteCount != 2 {
			t.Errorf("expected 2 executions, got %d", counter.ExecuteCount)
		}
		if counter.TotalTime != 750*time.Millisecond {
			t.Errorf("expected 750ms accumulated, got %s", counter.TotalTime)
		}
		if counter.LastIndex != 1 {
			t.Errorf("expected last frame index 1, got %d", counter.LastIndex)
		}
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "first")
		}))
		scheduler.Register(&orderSystem{name: "second", log: &order})

		scheduler.Once(time.Millisecond)

		expected := []string{"first", "second", "deferred"}
		if len(order) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, order)
		}
		for i := range expected {
			if order[i] != expected[i] {
				t.Errorf("step %d: expected %s, got %s", i, expected[i], order[i])
			}
		}

		scheduler.Once(time.Millisecond)
		if len(order) != 6 {
			t.Errorf("expected commands to be reset between frames, got %v", order)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
		if counter.TotalTime <= 0 {
			t.Error("expected positive delta times from the ticker")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		time.Sleep(time.Millisecond)
	}))

	stats := scheduler.Stats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any frame, got %s", stats.Systems[0].MinDuration)
	}

	for i := 0; i < 3; i++ {
		scheduler.Once(time.Millisecond)
	}

	stats = scheduler.Stats()
	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
	}
	if stats.Systems[0].Name != "countingSystem" {
		t.Errorf("expected countingSystem, got %q", stats.Systems[0].Name)
	}
	if stats.Systems[1].Name != "SystemFunc" {
		t.Errorf("expected SystemFunc, got %q", stats.Systems[1].Name)
	}

	slow := stats.Systems[1]
	if slow.MinDuration < time.Millisecond {
		t.Errorf("expected min duration >= 1ms, got %s", slow.MinDuration)
	}
	if slow.MaxDuration < slow.MinDuration || slow.AvgDuration < slow.MinDuration || slow.AvgDuration > slow.MaxDuration {
		t.Errorf("inconsistent durations: min=%s avg=%s max=%s", slow.MinDuration, slow.AvgDuration, slow.MaxDuration)
	}
	if slow.TotalDuration < 3*time.Millisecond {
		t.Errorf("expected total >= 3ms, got %s", slow.TotalDuration)
	}
}

package timing

import (
	"math"
	"testing"
	"time"
)

func TestCountdownNewShowsRequestedDuration(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 5*time.Minute)

	if c.IsPaused() {
		t.Error("Expected new countdown to be running")
	}

	// A short delay before the first frame must not skip a displayed second
	clock.Advance(200 * time.Millisecond)
	if got := FormatDuration(c.TimeLeft()); got != "00:05:00" {
		t.Errorf("Expected 00:05:00 on first frame, got %s", got)
	}
}

func TestCountdownFinishes(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 3*time.Second)

	clock.Advance(3 * time.Second)
	if c.IsFinished() {
		t.Fatalf("Finished too early with %v left", c.TimeLeft())
	}

	clock.Advance(time.Second)
	if !c.IsFinished() {
		t.Fatalf("Expected finished, %v left", c.TimeLeft())
	}

	clock.Advance(time.Hour)
	if c.TimeLeft() != 0 {
		t.Errorf("Expected saturation at 0, got %v", c.TimeLeft())
	}
	if !c.IsFinished() {
		t.Error("Expected to stay finished")
	}
}

func TestCountdownMonotonic(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 10*time.Second)

	prev := c.TimeLeft()
	finished := false
	ticks := clock.Step(73*time.Millisecond, 200, func(int) bool {
		cur := c.TimeLeft()
		if cur > prev {
			t.Fatalf("TimeLeft increased while running: %v -> %v", prev, cur)
		}
		if finished && !c.IsFinished() {
			t.Fatal("IsFinished reverted without reset")
		}
		finished = c.IsFinished()
		prev = cur
		return true
	})
	if ticks != 200 {
		t.Errorf("Expected 200 ticks, got %d", ticks)
	}
	if !finished {
		t.Error("Expected countdown to finish")
	}
}

func TestCountdownFinishesOnWholeSecond(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 2*time.Second)

	clock.Step(10*time.Millisecond, 1000, func(int) bool {
		return !c.IsFinished()
	})
	// 2s plus the display pad, finished once under one second remains
	if got := clock.Elapsed(); got != 2*time.Second+10*time.Millisecond {
		t.Errorf("Expected finish after 2.01s, got %v", got)
	}
}

func TestCountdownHugeDurationSaturates(t *testing.T) {
	for _, d := range []time.Duration{MaxDuration, time.Duration(math.MaxInt64)} {
		clock := newMockClock()
		c := NewCountdown(clock, d)

		if c.IsFinished() {
			t.Errorf("NewCountdown(%v) finished immediately", d)
		}
		if c.TimeLeft() < d-time.Second {
			t.Errorf("NewCountdown(%v) shows %v left", d, c.TimeLeft())
		}

		clock.Advance(time.Hour)
		if c.IsFinished() || c.TimeLeft() > d {
			t.Errorf("NewCountdown(%v) after 1h: %v left", d, c.TimeLeft())
		}
	}
}

func TestCountdownResumeAfterResetSaturates(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, time.Duration(math.MaxInt64))

	c.Reset()
	c.TogglePause()
	if c.IsPaused() || c.IsFinished() {
		t.Fatalf("Expected running countdown after resume, paused=%v left=%v", c.IsPaused(), c.TimeLeft())
	}
}

func TestCountdownParsedMaximum(t *testing.T) {
	d, err := ParseDuration("2562047:47:15")
	if err != nil {
		t.Fatalf("ParseDuration failed: %v", err)
	}

	clock := newMockClock()
	c := NewCountdown(clock, d)
	clock.Advance(200 * time.Millisecond)
	if got, want := FormatDuration(c.TimeLeft()), FormatDuration(d); got != want {
		t.Errorf("Expected first frame %s, got %s", want, got)
	}
}

func TestCountdownPauseHoldsTime(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 10*time.Second)

	clock.Advance(4 * time.Second)
	c.TogglePause()
	if !c.IsPaused() {
		t.Fatal("Expected paused")
	}

	held := c.TimeLeft()
	if held != 7*time.Second {
		t.Errorf("Expected 7s held, got %v", held)
	}
	clock.Advance(time.Hour)
	if c.TimeLeft() != held {
		t.Errorf("TimeLeft changed while paused: %v -> %v", held, c.TimeLeft())
	}

	c.TogglePause()
	if c.TimeLeft() != held {
		t.Errorf("Expected %v right after resume, got %v", held, c.TimeLeft())
	}
	clock.Advance(2 * time.Second)
	if c.TimeLeft() != 5*time.Second {
		t.Errorf("Expected 5s, got %v", c.TimeLeft())
	}
}

func TestCountdownPauseAfterDeadline(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, time.Second)
	clock.Advance(time.Minute)

	c.TogglePause()
	if c.TimeLeft() != 0 {
		t.Errorf("Expected 0 held after deadline, got %v", c.TimeLeft())
	}
	c.TogglePause()
	if !c.IsFinished() {
		t.Error("Expected finished after resume at zero")
	}
}

func TestCountdownReset(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 90*time.Second)

	clock.Advance(30 * time.Second)
	c.Reset()

	if !c.IsPaused() {
		t.Fatal("Expected reset to leave the countdown paused")
	}
	if c.TimeLeft() != 90*time.Second {
		t.Errorf("Expected full duration after reset, got %v", c.TimeLeft())
	}
	clock.Advance(time.Hour)
	if c.TimeLeft() != 90*time.Second {
		t.Errorf("Expected duration to hold while paused, got %v", c.TimeLeft())
	}

	// Resuming behaves like a fresh countdown on the first frame
	c.TogglePause()
	clock.Advance(300 * time.Millisecond)
	if got := FormatDuration(c.TimeLeft()); got != "00:01:30" {
		t.Errorf("Expected 00:01:30 after resume, got %s", got)
	}

	// A later pause/resume does not add the pad again
	clock.Advance(10 * time.Second)
	c.TogglePause()
	held := c.TimeLeft()
	c.TogglePause()
	if c.TimeLeft() != held {
		t.Errorf("Expected %v after plain resume, got %v", held, c.TimeLeft())
	}
}

func TestCountdownResetAfterFinish(t *testing.T) {
	clock := newMockClock()
	c := NewCountdown(clock, 2*time.Second)
	clock.Advance(5 * time.Second)
	if !c.IsFinished() {
		t.Fatal("Expected finished")
	}

	c.Reset()
	if c.IsFinished() {
		t.Error("Expected reset to clear the finished state")
	}
	if c.Duration() != 2*time.Second {
		t.Errorf("Expected duration to be kept, got %v", c.Duration())
	}
}

package animations

import "time"

// Timer is a one-shot countdown. JustFinished reports the finishing edge and
// is cleared by the next Tick; Finished stays set until Reset.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	finished     bool
	justFinished bool
}

func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

func (t *Timer) Tick(delta time.Duration) {
	t.justFinished = false
	if t.finished {
		return
	}
	t.elapsed += delta
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.finished = true
		t.justFinished = true
	}
}

func (t *Timer) Reset(d time.Duration) {
	*t = Timer{duration: d}
}

func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// FrameDuration converts a count of simulation frames into wall time at
// tickRate steps per second. The result is a whole number of steps so a
// fixed-step clock lands exactly on it.
func FrameDuration(frames, tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(frames) * (time.Second / time.Duration(tickRate))
}

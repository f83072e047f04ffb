package animations

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/fightcore/catalog"
)

var ErrIndexOutOfRange = errors.New("animation frame index out of range")

// Animation is the per-combatant playback state of one clip. The clip is
// shared; the cursor and timer are not.
type Animation struct {
	Clip     *catalog.AnimationClip
	tickRate int
	frame    int
	timer    Timer
}

func NewAnimation(clip *catalog.AnimationClip, tickRate int) *Animation {
	a := &Animation{
		Clip:     clip,
		tickRate: tickRate,
	}
	a.timer = NewTimer(a.frameDuration())
	return a
}

// Tick advances the frame timer only.
func (a *Animation) Tick(delta time.Duration) {
	a.timer.Tick(delta)
}

// JustElapsed is true on the single tick the current frame's time runs out.
func (a *Animation) JustElapsed() bool {
	return a.timer.JustFinished()
}

// AdvanceFrame moves to the next frame and restarts the timer. It does
// nothing on the last frame.
func (a *Animation) AdvanceFrame() {
	if a.IsLastFrame() {
		return
	}
	a.frame++
	a.timer.Reset(a.frameDuration())
}

// Restart rewinds to frame 0 and restarts the timer.
func (a *Animation) Restart() {
	a.frame = 0
	a.timer.Reset(a.frameDuration())
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) IsLastFrame() bool {
	return a.frame >= a.Clip.LastIndex()
}

func (a *Animation) SpriteIndex() (int, error) {
	if a.frame < 0 || a.frame >= len(a.Clip.Frames) {
		return 0, fmt.Errorf("%w: frame %d of %d", ErrIndexOutOfRange, a.frame, len(a.Clip.Frames))
	}
	return a.Clip.Frames[a.frame], nil
}

func (a *Animation) LastSpriteIndex() (int, error) {
	if len(a.Clip.Frames) == 0 {
		return 0, fmt.Errorf("%w: empty clip", ErrIndexOutOfRange)
	}
	return a.Clip.Frames[a.Clip.LastIndex()], nil
}

func (a *Animation) Phase() Phase {
	return PhaseAt(a.Clip.Window, a.frame)
}

func (a *Animation) IsActive() bool {
	return a.Phase() == PhaseActive
}

// InRecovery widens the recovery check by margin frames.
func (a *Animation) InRecovery(margin int) bool {
	return RecoveryAt(a.Clip.Window, a.frame, margin)
}

// FrameTime is how long each sprite of the clip is held.
func (a *Animation) FrameTime() time.Duration {
	return a.frameDuration()
}

func (a *Animation) frameDuration() time.Duration {
	return FrameDuration(a.Clip.Rate, a.tickRate)
}

// Seek places the cursor without touching the timer.
func (a *Animation) Seek(frame int) {
	a.frame = frame
}

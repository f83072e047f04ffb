package animations

import "github.com/automoto/fightcore/catalog"

type Phase int

const (
	PhaseNone Phase = iota
	PhaseStartup
	PhaseActive
	PhaseRecovery
)

var phaseNames = [...]string{"none", "startup", "active", "recovery"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// PhaseAt classifies a frame cursor against a window:
// startup [0, s), active [s, s+a], recovery (s+a, s+a+r].
// A nil window, or a frame past the window, is PhaseNone.
func PhaseAt(w *catalog.FrameWindow, frame int) Phase {
	if w == nil || frame < 0 {
		return PhaseNone
	}
	activeEnd := w.Startup + w.Active
	switch {
	case frame < w.Startup:
		return PhaseStartup
	case frame <= activeEnd:
		return PhaseActive
	case frame <= w.Total():
		return PhaseRecovery
	}
	return PhaseNone
}

// RecoveryAt reports whether frame is in recovery with the window's start
// pulled back by margin frames.
func RecoveryAt(w *catalog.FrameWindow, frame, margin int) bool {
	if w == nil {
		return false
	}
	if margin < 0 {
		margin = 0
	}
	return frame > w.Startup+w.Active-margin && frame <= w.Total()
}

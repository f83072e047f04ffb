package components

import (
	"time"

	"github.com/automoto/fightcore/assets/animations"
)

// HitStunData locks a combatant out of new requests until Timer finishes.
type HitStunData struct {
	Timer animations.Timer
}

func NewHitStun(d time.Duration) *HitStunData {
	return &HitStunData{Timer: animations.NewTimer(d)}
}

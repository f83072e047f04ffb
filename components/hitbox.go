package components

import (
	"github.com/automoto/fightcore/catalog"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is the damaging region of an attack while it is active. One
// value lives for one activation, from the first active frame to the last.
// Object is nil while the hitbox is closed for the rest of a tick in which
// its owner was hit; HitEntities survives the reopen.
type HitboxData struct {
	Activation  uuid.UUID
	Run         int // CombatantData.Run the hitbox was opened for
	Box         catalog.Box
	Object      *resolv.Object
	HitEntities map[donburi.Entity]bool // victims already hit by this activation
}

// Open reports whether the hitbox is currently in the collision space.
func (h *HitboxData) Open() bool {
	return h != nil && h.Object != nil
}

func NewHitbox(run int, box catalog.Box, obj *resolv.Object) *HitboxData {
	return &HitboxData{
		Activation:  uuid.New(),
		Run:         run,
		Box:         box,
		Object:      obj,
		HitEntities: make(map[donburi.Entity]bool),
	}
}

package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
)

// Resolv tags for hit detection
const (
	ResolvHurtbox = "hurtbox"
	ResolvHitbox  = "hitbox"
)

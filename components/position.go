package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PositionData is a combatant's origin in arena coordinates. Facing is +1
// when looking right and -1 when looking left; box offsets mirror with it.
type PositionData struct {
	math.Vec2
	Facing float64
}

var Position = donburi.NewComponentType[PositionData]()

package systems

import (
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnapshots moves every hurtbox to its combatant's position. It runs
// first so collision later in the tick sees start-of-tick positions.
func UpdateSnapshots(ecs *ecs.ECS) {
	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		c := components.Combatant.Get(e)
		obj := components.Object.Get(e).Object
		components.MoveTo(obj, components.Place(c.Hurtbox, pos.Vec2, pos.Facing))
	})
}

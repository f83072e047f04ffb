package systems

import (
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateAnimations is the frame clock. Each combatant's current clip is
// ticked by one step; when its frame time runs out the clip either moves to
// the next frame or, on the last frame, hands over to the next state.
func UpdateAnimations(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	log := logger(sim)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		anim := c.Current().Animation
		anim.Tick(sim.Step)
		if !anim.JustElapsed() {
			return
		}

		// Decide before mutating: Shift replaces the runtime being read.
		if anim.IsLastFrame() {
			prev := c.State
			c.Shift()
			if prev != c.State {
				log.Debug("state shift",
					zap.Uint64("tick", sim.Tick),
					entityField(e.Entity()),
					zap.Stringer("from", prev),
					zap.Stringer("to", c.State),
				)
			}
			return
		}
		anim.AdvanceFrame()
		c.SyncSprite()
	})
}

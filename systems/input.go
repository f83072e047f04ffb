package systems

import (
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateIntents applies the request queued for each combatant this tick.
func UpdateIntents(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	log := logger(sim)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		if intent.Pending == cfg.StateNone {
			return
		}
		c := components.Combatant.Get(e)
		requested := intent.Pending

		intent.Accepted = c.Request(requested)
		intent.Resolved = true
		intent.Pending = cfg.StateNone

		if !intent.Accepted {
			log.Debug("request rejected",
				zap.Uint64("tick", sim.Tick),
				entityField(e.Entity()),
				zap.Stringer("requested", requested),
				zap.Stringer("state", c.State),
				zap.Bool("stunned", c.Stunned()),
			)
		}
	})
}

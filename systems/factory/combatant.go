package factory

import (
	"fmt"

	"github.com/automoto/fightcore/archetypes"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCombatant spawns a fighter at rest from catalog data. An incomplete
// catalog fails here and nothing is added to the world.
func CreateCombatant(ecs *ecs.ECS, ch *catalog.Character, x, y, facing float64) (*donburi.Entry, error) {
	sim, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("spawn %s: no simulation clock", ch.Name)
	}
	simData := components.Simulation.Get(sim)

	combatant, err := components.NewCombatant(ch, simData.TickRate, simData.CancelWindow)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", ch.Name, err)
	}
	if facing == 0 {
		facing = 1
	}

	entry := archetypes.Combatant.Spawn(ecs)
	origin := math.NewVec2(x, y)
	hurt := components.Place(ch.Hurtbox, origin, facing)

	obj := resolv.NewObject(hurt.X, hurt.Y, hurt.W, hurt.H, tags.ResolvHurtbox)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Combatant.SetValue(entry, combatant)
	components.Position.SetValue(entry, components.PositionData{Vec2: origin, Facing: facing})
	components.Health.SetValue(entry, components.HealthData{
		Current: ch.Health,
		Max:     ch.Health,
	})
	components.Intent.SetValue(entry, components.IntentData{Pending: cfg.StateNone})

	return entry, nil
}

// DestroyCombatant removes a fighter and its collision objects.
func DestroyCombatant(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Remove(components.Object.Get(entry).Object)
		if hb := components.Combatant.Get(entry).Hitbox; hb.Open() {
			space.Remove(hb.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}

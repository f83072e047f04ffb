package archetypes

import (
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Combatant,
		components.Object,
		components.Position,
		components.Health,
		components.Intent,
	)
	Space = newArchetype(
		components.Space,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}

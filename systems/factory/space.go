package factory

import (
	"github.com/automoto/fightcore/archetypes"
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the resolv space hurtboxes and hitboxes live in.
func CreateSpace(ecs *ecs.ECS, arena cfg.ArenaConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(arena.Width, arena.Height, arena.CellSize, arena.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

package systems

import (
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateSimulation returns the singleton clock, creating one from the
// global config if the world has none.
func GetOrCreateSimulation(ecs *ecs.ECS) *components.SimulationData {
	if _, ok := components.Simulation.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Simulation))
		components.Simulation.SetValue(ent, components.SimulationData{
			TickRate:     cfg.C.Combat.TickRate,
			Step:         cfg.C.Combat.Step(),
			CancelWindow: cfg.C.Combat.CancelWindow,
			Logger:       zap.NewNop(),
		})
	}
	ent, _ := components.Simulation.First(ecs.World)
	return components.Simulation.Get(ent)
}

// GetOrCreateSpace returns the collision space, sized from the global config
// if the world has none.
func GetOrCreateSpace(ecs *ecs.ECS) *resolv.Space {
	if _, ok := components.Space.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Space))
		a := cfg.C.Arena
		components.Space.Set(ent, resolv.NewSpace(a.Width, a.Height, a.CellSize, a.CellSize))
	}
	ent, _ := components.Space.First(ecs.World)
	return components.Space.Get(ent)
}

func simulationOf(w donburi.World) *components.SimulationData {
	ent, ok := components.Simulation.First(w)
	if !ok {
		return &components.SimulationData{Logger: zap.NewNop()}
	}
	return components.Simulation.Get(ent)
}

func spaceOf(w donburi.World) *resolv.Space {
	ent, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(ent)
}

func logger(sim *components.SimulationData) *zap.Logger {
	if sim.Logger == nil {
		return zap.NewNop()
	}
	return sim.Logger
}

func entityField(e donburi.Entity) zap.Field {
	return zap.Uint64("entity", uint64(e))
}

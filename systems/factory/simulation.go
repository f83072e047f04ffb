package factory

import (
	"github.com/automoto/fightcore/archetypes"
	"github.com/automoto/fightcore/components"
	cfg "github.com/automoto/fightcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func CreateSimulation(ecs *ecs.ECS, combat cfg.CombatConfig, logger *zap.Logger) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(sim, components.SimulationData{
		TickRate:     combat.TickRate,
		Step:         combat.Step(),
		CancelWindow: combat.CancelWindow,
		Logger:       logger,
	})
	return sim
}

package components

import (
	"time"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SimulationData is the singleton clock shared by all combat systems.
type SimulationData struct {
	TickRate     int
	Step         time.Duration
	Tick         uint64
	CancelWindow int
	Logger       *zap.Logger
}

var Simulation = donburi.NewComponentType[SimulationData]()

package components

import (
	"time"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/core"
	"github.com/yohamta/donburi"
)

// SimulationData ties the fixed-timestep simulation to the frame loop.
type SimulationData struct {
	Sim    *core.Simulation
	Config *config.Config

	// LastFrame is zero until the first frame has been seen
	LastFrame time.Time
	// StepsLastFrame is the number of fixed steps run by the last frame
	StepsLastFrame int
}

var Simulation = donburi.NewComponentType[SimulationData]()

package systems

import (
	"time"

	"github.com/leondejong/platform-game/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation feeds the frame's intent and real elapsed time into the
// fixed-timestep simulation. Must run AFTER UpdateInput.
func UpdateSimulation(ecs *ecs.ECS) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry)
	sim.Sim.SetIntent(intentFrom(getOrCreateInput(ecs)))
	sim.StepsLastFrame = advance(sim, time.Now())
}

// advance runs the steps that fit into the time since the previous frame.
// The first frame only starts the clock.
func advance(sim *components.SimulationData, now time.Time) int {
	if sim.LastFrame.IsZero() {
		sim.LastFrame = now
		return 0
	}
	frame := now.Sub(sim.LastFrame)
	sim.LastFrame = now
	return sim.Sim.Advance(frame)
}

// GetSimulation returns the game's simulation component, or nil before the
// game entity exists.
func GetSimulation(ecs *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

package systems

import (
	"testing"
	"time"

	"github.com/leondejong/platform-game/config/frontend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestAdvanceStartsClockOnFirstFrame(t *testing.T) {
	e := newTestGame(t)
	sim := GetSimulation(e)
	require.NotNil(t, sim)

	start := time.Unix(1000, 0)
	assert.Equal(t, 0, advance(sim, start))
	assert.Equal(t, start, sim.LastFrame)
	assert.Zero(t, sim.Sim.Steps())

	assert.Equal(t, 6, advance(sim, start.Add(110*time.Millisecond)))
	assert.EqualValues(t, 6, sim.Sim.Steps())
}

func TestPauseStopsSimulationAndResetsClock(t *testing.T) {
	e := newTestGame(t)
	sim := GetSimulation(e)
	input := getOrCreateInput(e)

	calls := 0
	system := WithPauseCheck(func(_ *ecs.ECS) { calls++ })

	system(e)
	assert.Equal(t, 1, calls)

	press(input, frontend.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	system(e)
	assert.Equal(t, 1, calls)

	sim.LastFrame = time.Unix(1000, 0)
	press(input, frontend.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
	assert.True(t, sim.LastFrame.IsZero())
	system(e)
	assert.Equal(t, 2, calls)
}

func TestPauseIgnoresHeldKey(t *testing.T) {
	e := newTestGame(t)
	input := getOrCreateInput(e)
	input.Current[frontend.ActionPause] = true
	input.Previous[frontend.ActionPause] = true

	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

package core

import (
	"testing"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/stretchr/testify/require"
)

// stubEffect finishes after a fixed number of updates.
type stubEffect struct {
	duration  int
	remaining int
	setups    int
	x, y      float64
}

func (e *stubEffect) Setup(x, y float64) {
	e.setups++
	e.x, e.y = x, y
	e.remaining = e.duration
}

func (e *stubEffect) Update(_, _ float64) bool {
	e.remaining--
	return e.remaining <= 0
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Level.Walls = false
	return cfg
}

func tile(archetype string, x, y, w, h float64) leveldata.Placement {
	return leveldata.Placement{X: x, Y: y, W: w, H: h, Archetype: archetype}
}

type fixture struct {
	cfg    *config.Config
	level  *Level
	player *Player
	sim    *Simulation
	effect *stubEffect
}

// newFixture builds a wall-less level with the player spawned at (x, y).
func newFixture(t *testing.T, x, y float64, tiles ...leveldata.Placement) *fixture {
	t.Helper()
	cfg := testConfig()
	data := &leveldata.Data{Tiles: tiles, Spawn: &leveldata.Point{X: x, Y: y}}

	level, err := NewLevel(cfg, NewCatalog(cfg), data)
	require.NoError(t, err)
	effect := &stubEffect{duration: 3}
	player, err := NewPlayer(cfg, level, effect)
	require.NoError(t, err)

	return &fixture{
		cfg:    cfg,
		level:  level,
		player: player,
		sim:    NewSimulation(cfg, level, player),
		effect: effect,
	}
}

// ground is a wide floor whose top edge is at y.
func ground(archetype string, y float64) leveldata.Placement {
	return tile(archetype, -100, y, 4000, 40)
}

func (f *fixture) steps(n int) {
	for i := 0; i < n; i++ {
		f.sim.Step()
	}
}

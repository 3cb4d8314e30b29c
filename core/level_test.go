package core

import (
	"math"
	"testing"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/shared/gamemath"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevelErrors(t *testing.T) {
	cfg := testConfig()
	cat := NewCatalog(cfg)

	tests := []struct {
		name string
		data *leveldata.Data
		want error
	}{
		{"no tiles", &leveldata.Data{}, leveldata.ErrNoTiles},
		{"unknown archetype", &leveldata.Data{Tiles: []leveldata.Placement{tile("quicksand", 0, 0, 10, 10)}}, ErrUnknownArchetype},
		{"zero width", &leveldata.Data{Tiles: []leveldata.Placement{tile("standard", 0, 0, 0, 10)}}, gamemath.ErrInvalidRect},
		{"nan", &leveldata.Data{Tiles: []leveldata.Placement{tile("standard", math.NaN(), 0, 10, 10)}}, gamemath.ErrInvalidRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevel(cfg, cat, tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewLevelWalls(t *testing.T) {
	cfg := config.Default()
	data := &leveldata.Data{Tiles: []leveldata.Placement{tile("grass", 100, 100, 50, 10)}}
	level, err := NewLevel(cfg, NewCatalog(cfg), data)
	require.NoError(t, err)

	tiles := level.Tiles()
	require.Len(t, tiles, 6)
	for i, tl := range tiles {
		assert.Equal(t, i, tl.Index())
	}
	assert.Equal(t, "grass", tiles[0].Archetype.Name)
	bar := tiles[5]
	assert.Equal(t, "standard", bar.Archetype.Name)
	assert.Equal(t, cfg.Level.Height-cfg.Level.InterfaceHeight, bar.Rect.Y)

	x, y := level.Spawn()
	assert.Equal(t, cfg.Player.SpawnX, x)
	assert.Equal(t, cfg.Player.SpawnY, y)
}

func TestBuiltinLevelLoads(t *testing.T) {
	cfg := config.Default()
	data := leveldata.Default().Scale(config.PixelsPerMeter)
	level, err := NewLevel(cfg, NewCatalog(cfg), data)
	require.NoError(t, err)
	assert.Len(t, level.Tiles(), len(data.Tiles)+5)
	assert.Len(t, level.Decorations(), len(data.Decorations))
}

func TestLevelOscillation(t *testing.T) {
	f := newFixture(t, 0, 0, tile("platformH", 100, 100, 80, 20))
	platform := f.level.Tiles()[0]
	dt := f.cfg.TimeStep

	f.level.Update(dt, 0, nil)
	x, y, ok := platform.Origin()
	require.True(t, ok)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)
	assert.Equal(t, 100.0, platform.Rect.X)
	assert.Equal(t, 0.0, platform.DeltaX)

	f.level.Update(dt, 1000, nil)
	a := platform.Archetype
	want := 100 + math.Sin(dt*1000*a.VelocityX*f.cfg.Physics.OscillationRate)*a.DistanceX
	assert.InDelta(t, want, platform.Rect.X, 1e-9)
	assert.InDelta(t, 100-want, platform.DeltaX, 1e-9)
	assert.Equal(t, 100.0, platform.Rect.Y)
	assert.Equal(t, 0.0, platform.DeltaY)

	// the broad phase follows the tile
	found := f.level.candidates(gamemath.AABB{X: want + 1, Y: 101, W: 1, H: 1})
	assert.Contains(t, found, platform)
}

func TestLevelStaticTilesDoNotMove(t *testing.T) {
	f := newFixture(t, 0, 0, tile("stone", 10, 10, 10, 10))
	f.level.Update(f.cfg.TimeStep, 5000, nil)
	_, _, ok := f.level.Tiles()[0].Origin()
	assert.False(t, ok)
	assert.Equal(t, 10.0, f.level.Tiles()[0].Rect.X)
}

func TestLevelAmbientLastContactWins(t *testing.T) {
	f := newFixture(t, 0, 0,
		tile("earth", 0, 100, 100, 20),
		tile("stone", 100, 100, 100, 20),
		tile("water", 0, 0, 100, 20),
	)
	tiles := f.level.Tiles()
	earth, stone, water := tiles[0], tiles[1], tiles[2]

	f.level.Update(f.cfg.TimeStep, 0, []*Tile{earth, stone})
	assert.Equal(t, 0.93, f.level.Ambient.FrictionX)

	f.level.Update(f.cfg.TimeStep, 0, []*Tile{stone, earth})
	assert.Equal(t, 0.97, f.level.Ambient.FrictionX)

	// unset fields go back to the default, not to the earlier tile
	f.level.Update(f.cfg.TimeStep, 0, []*Tile{water, earth})
	assert.Equal(t, 0.97, f.level.Ambient.FrictionX)
	assert.Equal(t, f.cfg.Physics.FrictionY, f.level.Ambient.FrictionY)
	assert.Equal(t, f.cfg.Physics.Gravity, f.level.Ambient.Gravity)

	f.level.Update(f.cfg.TimeStep, 0, nil)
	assert.Equal(t, Ambient{
		Gravity:   f.cfg.Physics.Gravity,
		FrictionX: f.cfg.Physics.FrictionX,
		FrictionY: f.cfg.Physics.FrictionY,
	}, f.level.Ambient)
}

func TestLevelConveyorForce(t *testing.T) {
	f := newFixture(t, 0, 0, tile("conveyorR", 0, 100, 100, 20))
	f.level.Update(f.cfg.TimeStep, 0, f.level.Tiles())
	assert.Positive(t, f.level.Ambient.ForceX)
	assert.Equal(t, 0.0, f.level.Ambient.ForceY)
}

func TestLevelDisposeOnContact(t *testing.T) {
	f := newFixture(t, 0, 0, tile("enemy", 0, 0, 20, 20), tile("stone", 0, 40, 20, 20))
	enemy := f.level.Tiles()[0]

	f.level.Update(f.cfg.TimeStep, 0, []*Tile{enemy})
	assert.True(t, enemy.Disposed)
	assert.NotContains(t, f.level.candidates(gamemath.AABB{X: 0, Y: 0, W: 20, H: 60}), enemy)

	// disposed tiles stay put
	x := enemy.Rect.X
	f.level.Update(f.cfg.TimeStep, 1000, nil)
	assert.Equal(t, x, enemy.Rect.X)
	assert.Len(t, f.level.Tiles(), 2)
}

func TestTileIndexQuery(t *testing.T) {
	f := newFixture(t, 0, 0,
		tile("stone", -500, -500, 10, 10),
		tile("stone", 0, 0, 10, 10),
		tile("stone", 12, 0, 10, 10),
		tile("stone", 1000, 1000, 10, 10),
	)
	tiles := f.level.Tiles()

	found := f.level.candidates(gamemath.AABB{X: 5, Y: 5, W: 10, H: 2})
	assert.Equal(t, []*Tile{tiles[1], tiles[2]}, found)

	found = f.level.candidates(gamemath.AABB{X: -495, Y: -495, W: 1, H: 1})
	assert.Equal(t, []*Tile{tiles[0]}, found)

	assert.Empty(t, f.level.candidates(gamemath.AABB{X: 400, Y: 400, W: 20, H: 20}))
}

func TestNewTileValidates(t *testing.T) {
	_, err := NewTile(gamemath.AABB{W: -1, H: 1}, TileArchetype{Name: "stone"})
	assert.ErrorIs(t, err, gamemath.ErrInvalidRect)
}

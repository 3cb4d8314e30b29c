package effects

import (
	"math"
	"testing"

	"github.com/leondejong/platform-game/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionSetup(t *testing.T) {
	cfg := config.Default().Explosion
	e := NewExplosion(cfg)
	e.Setup(100, 50)

	require.Len(t, e.Particles(), cfg.Particles)
	assert.Equal(t, 1.0, e.Alpha())
	for _, p := range e.Particles() {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 50.0, p.Y)
		assert.Equal(t, cfg.Speed, p.V)
		assert.GreaterOrEqual(t, p.R, 0.0)
		assert.Less(t, p.R, cfg.Radius)
		assert.Less(t, p.Theta, 2*math.Pi)
	}
}

func TestExplosionFinishes(t *testing.T) {
	cfg := config.Default().Explosion
	e := NewExplosion(cfg)
	e.Setup(0, 0)

	// 0.95^58 is still above 0.05, 0.95^59 is below
	for i := 0; i < 58; i++ {
		require.False(t, e.Update(config.TimeStep, 0), "update %d", i+1)
	}
	assert.InDelta(t, math.Pow(cfg.Fade, 58), e.Alpha(), 1e-12)
	assert.True(t, e.Update(config.TimeStep, 0))

	// finished effects start over around the same center
	assert.Equal(t, 1.0, e.Alpha())
	assert.Equal(t, 0, e.Iterations())
	x, y := e.Center()
	for _, p := range e.Particles() {
		assert.Equal(t, x, p.X)
		assert.Equal(t, y, p.Y)
	}
}

func TestExplosionParticlesMoveOutward(t *testing.T) {
	e := NewExplosion(config.Default().Explosion)
	e.Setup(10, 10)
	before := append([]Particle(nil), e.Particles()...)
	e.Update(config.TimeStep, 0)

	for i, p := range e.Particles() {
		d0 := math.Hypot(before[i].X-10, before[i].Y-10)
		d1 := math.Hypot(p.X-10, p.Y-10)
		assert.GreaterOrEqual(t, d1, d0)
		assert.Less(t, p.V, before[i].V)
	}
}

func TestExplosionSeeded(t *testing.T) {
	cfg := config.Default().Explosion
	a, b := NewExplosion(cfg), NewExplosion(cfg)
	a.Setup(5, 5)
	b.Setup(5, 5)
	assert.Equal(t, a.Particles(), b.Particles())
}

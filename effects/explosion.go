// Package effects holds the visual effects driven by the simulation.
package effects

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/leondejong/platform-game/config"
)

// Particle is a single explosion fragment moving outward along theta.
type Particle struct {
	X, Y  float64
	V     float64
	R     float64
	Theta float64
	Color color.NRGBA
}

// Explosion is the player's death effect. It fades all particles together
// and reports completion once the alpha drops below the configured limit.
type Explosion struct {
	cfg config.ExplosionConfig
	rng *rand.Rand

	x, y       float64
	alpha      float64
	velocity   float64 // per-update speed factor
	particles  []Particle
	iterations int
}

// NewExplosion creates an idle explosion. The seed makes particle layouts
// reproducible between runs.
func NewExplosion(cfg config.ExplosionConfig) *Explosion {
	return &Explosion{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		alpha:    1,
		velocity: cfg.Fade + (1-cfg.Fade)/2,
	}
}

// Setup centers a fresh set of particles on (x, y) at full alpha.
func (e *Explosion) Setup(x, y float64) {
	e.x, e.y = x, y
	e.reset()
}

func (e *Explosion) reset() {
	e.alpha = 1
	e.iterations = 0
	if cap(e.particles) < e.cfg.Particles {
		e.particles = make([]Particle, e.cfg.Particles)
	}
	e.particles = e.particles[:e.cfg.Particles]
	for i := range e.particles {
		e.particles[i] = Particle{
			X:     e.x,
			Y:     e.y,
			V:     e.cfg.Speed,
			R:     e.rng.Float64() * e.cfg.Radius,
			Theta: e.rng.Float64() * 2 * math.Pi,
			Color: color.NRGBA{
				R: uint8(e.rng.Intn(256)),
				G: uint8(e.rng.Intn(256)),
				B: uint8(e.rng.Intn(256)),
				A: 255,
			},
		}
	}
}

// Update moves the particles one step. It returns true on the step the
// effect finishes; the particles are then reset around the same center.
func (e *Explosion) Update(_, _ float64) bool {
	e.alpha *= e.cfg.Fade
	e.iterations++
	for i := range e.particles {
		p := &e.particles[i]
		p.V *= e.velocity
		p.X += p.R * math.Cos(p.Theta) * p.V
		p.Y += p.R * math.Sin(p.Theta) * p.V
	}
	if e.alpha < e.cfg.DoneAlpha {
		e.reset()
		return true
	}
	return false
}

// Particles returns the live particles. The slice is reused between setups.
func (e *Explosion) Particles() []Particle { return e.particles }

// Alpha returns the shared opacity of all particles.
func (e *Explosion) Alpha() float64 { return e.alpha }

// Center returns the point the explosion started from.
func (e *Explosion) Center() (float64, float64) { return e.x, e.y }

// Iterations returns the number of updates since the last setup.
func (e *Explosion) Iterations() int { return e.iterations }

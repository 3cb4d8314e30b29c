package core

import (
	"errors"
	"math"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/shared/gamemath"
)

// ErrNilEffect is returned when a player is created without a death effect.
var ErrNilEffect = errors.New("player needs a death effect")

// Effect is the death animation collaborator. Update reports true once the
// animation has finished; the player then requests a respawn.
type Effect interface {
	Setup(x, y float64)
	Update(dt, elapsed float64) bool
}

// State is the player's lifecycle state.
type State int

const (
	Alive State = iota
	Disposed
)

func (s State) String() string {
	if s == Disposed {
		return "disposed"
	}
	return "alive"
}

// Intent is the per-frame input. UpEdge is true only on the frame the jump
// key went down; Up is true while it is held.
type Intent struct {
	Forward  bool
	Backward bool
	Up       bool
	UpEdge   bool
	Down     bool
}

// Contacts tells on which sides the last sweep pulled the player back.
type Contacts struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// Any reports whether any side is in contact.
func (c Contacts) Any() bool {
	return c.Top || c.Right || c.Bottom || c.Left
}

// Player is the controlled rectangle.
type Player struct {
	cfg    *config.Config
	level  *Level
	effect Effect

	Rect   gamemath.AABB
	VX, VY float64
	AX, AY float64
	FX, FY float64

	Contact  Contacts
	Health   float64
	AirJumps int

	// pending displacement, consumed by the sweep
	dx, dy float64

	forward   bool
	backward  bool
	up        bool // latched jump edge, cleared on use or release
	down      bool
	direction int

	tiles   []*Tile
	state   State
	respawn chan struct{}
}

// NewPlayer places a player at the level's spawn point.
func NewPlayer(cfg *config.Config, level *Level, effect Effect) (*Player, error) {
	if effect == nil {
		return nil, ErrNilEffect
	}
	pc := cfg.Player
	x, y := level.Spawn()
	return &Player{
		cfg:      cfg,
		level:    level,
		effect:   effect,
		Rect:     gamemath.AABB{X: x, Y: y, W: pc.Width, H: pc.Height},
		Health:   pc.MaxHealth,
		AirJumps: pc.AirJumps,
		respawn:  make(chan struct{}, 1),
	}, nil
}

// SetIntent applies the input collaborator's intent. A jump edge stays
// latched until a jump consumes it or the key is released.
func (p *Player) SetIntent(in Intent) {
	p.forward = in.Forward
	p.backward = in.Backward
	p.down = in.Down
	p.direction = gamemath.Direction(in.Forward, in.Backward)
	if in.UpEdge {
		p.up = true
	} else if !in.Up {
		p.up = false
	}
}

// Tiles returns the tiles touched during the last sweep, in the order they
// were found. A solid tile met on both axes appears twice.
func (p *Player) Tiles() []*Tile { return p.tiles }

// State returns the lifecycle state.
func (p *Player) State() State { return p.state }

// Disposed reports whether the player is dead and its effect is running.
func (p *Player) Disposed() bool { return p.state == Disposed }

// Effect returns the death effect collaborator.
func (p *Player) Effect() Effect { return p.effect }

// RespawnSignal fires once the death effect has finished. The driver
// answers it with Respawn.
func (p *Player) RespawnSignal() <-chan struct{} { return p.respawn }

// Update advances the player by one fixed step.
func (p *Player) Update(dt, elapsed float64) {
	if p.state == Disposed {
		if p.effect.Update(dt, elapsed) {
			select {
			case p.respawn <- struct{}{}:
			default:
			}
		}
		return
	}

	p.applyTiles(dt)
	if p.state == Disposed {
		return
	}
	p.integrate(dt)
	p.translate(dt)
}

// applyTiles applies the effects of the previous sweep's contacts: horizontal
// ride on moving platforms and health. Vertical ride is left to gravity and
// the vertical correction.
func (p *Player) applyTiles(dt float64) {
	max := p.cfg.Player.MaxHealth
	for _, t := range p.tiles {
		if !t.Archetype.Transcend && t.DeltaX != 0 {
			p.dx -= t.DeltaX
		}
		p.Health = gamemath.ClampMax(p.Health+dt*t.Archetype.HealthRate, max)
		if p.Health <= 0 {
			p.Health = 0
			p.dispose()
			return
		}
	}
}

func (p *Player) integrate(dt float64) {
	pc := p.cfg.Player
	amb := p.level.Ambient

	p.FX = amb.ForceX + pc.MoveForce*float64(p.direction)
	p.FY = amb.ForceY

	// Floor jump refills the air jumps, otherwise spend one
	if p.Contact.Bottom && p.up {
		p.up = false
		p.AirJumps = pc.AirJumps
		p.FY = -pc.JumpForce
	} else if p.up && p.AirJumps > 0 {
		p.up = false
		p.AirJumps--
		p.FY = -pc.JumpForce
	}
	// Wall jump
	if (p.Contact.Left && p.forward) || (p.Contact.Right && p.backward) {
		p.FY = -pc.JumpForce
	}
	// Push off the ceiling
	if p.Contact.Top && p.down {
		p.FY = pc.JumpForce
	}
	// Swim up through every transcended tile
	for _, t := range p.tiles {
		if t.Archetype.Transcend && p.up {
			p.FY -= pc.SwimForce
		}
	}
	// Climb down where gravity is near zero
	if amb.Gravity < p.cfg.Physics.DescendThreshold && p.down {
		p.FY += pc.SwimForce
	}

	p.AX = p.FX / pc.Mass
	p.AY = p.FY/pc.Mass + amb.Gravity
	p.VX += p.AX * dt
	p.VY += p.AY * dt

	snap := p.cfg.Physics.VelocitySnap
	p.VX = gamemath.Damp(p.VX, amb.FrictionX, snap)
	p.VY = gamemath.Damp(p.VY, amb.FrictionY, snap)
}

// translate sweeps the player against the tiles one axis at a time and
// rebuilds the contact set.
func (p *Player) translate(dt float64) {
	p.tiles = nil
	p.dx += p.VX * dt
	p.dy += p.VY * dt

	nx := p.Rect.Translate(p.dx, 0)
	ny := p.Rect.Translate(0, p.dy)
	area := union(nx, ny)

	for _, t := range p.level.candidates(area) {
		if t.Archetype.Transcend {
			if t.Rect.Intersects(nx) || t.Rect.Intersects(ny) {
				p.tiles = append(p.tiles, t)
			}
			continue
		}
		if t.Rect.Intersects(ny) {
			p.tiles = append(p.tiles, t)
			if p.dy < 0 {
				p.dy = t.Rect.Bottom() - p.Rect.Y
			} else if p.dy > 0 {
				p.dy = t.Rect.Y - p.Rect.Bottom()
			}
		}
		// Vertically moving tiles never push sideways, their own motion
		// would make the horizontal correction fight the vertical one.
		if t.Rect.Intersects(nx) && !t.Archetype.MovesY() {
			p.tiles = append(p.tiles, t)
			if p.dx < 0 {
				p.dx = t.Rect.Right() - p.Rect.X
			} else if p.dx > 0 {
				p.dx = t.Rect.X - p.Rect.Right()
			}
		}
	}

	p.Rect.X += p.dx
	p.Rect.Y += p.dy
	p.dx, p.dy = 0, 0

	p.Contact = Contacts{
		Bottom: ny.Y > p.Rect.Y,
		Top:    ny.Y < p.Rect.Y,
		Left:   nx.X < p.Rect.X,
		Right:  nx.X > p.Rect.X,
	}
	if p.Contact.Left || p.Contact.Right {
		p.VX = 0
	}
	if p.Contact.Top || p.Contact.Bottom {
		p.VY = 0
	}
}

func (p *Player) dispose() {
	p.state = Disposed
	p.effect.Setup(p.Rect.Center())
}

// Respawn returns a disposed player to the spawn point with full health.
func (p *Player) Respawn() {
	x, y := p.level.Spawn()
	p.state = Alive
	p.tiles = nil
	p.Contact = Contacts{}
	p.Health = p.cfg.Player.MaxHealth
	p.Rect.X, p.Rect.Y = x, y
	p.VX, p.VY = 0, 0
	p.dx, p.dy = 0, 0
}

func union(a, b gamemath.AABB) gamemath.AABB {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return gamemath.AABB{
		X: x,
		Y: y,
		W: math.Max(a.Right(), b.Right()) - x,
		H: math.Max(a.Bottom(), b.Bottom()) - y,
	}
}

package config

import "image/color"

// Unit conversion and timing constants. Lengths inside the simulation are
// pixels, masses are pixel-kilograms and time is seconds.
const (
	FPS               = 60
	TimeUnit          = 1.0
	TimeStep          = TimeUnit / FPS
	MetersPerPixel    = 0.05
	KilogramsPerPixel = 0.1
	PixelsPerMeter    = 1 / MetersPerPixel
	PixelsPerKilogram = 1 / KilogramsPerPixel
	ForceUnit         = 60 * PixelsPerMeter / (TimeUnit * TimeUnit)
)

// PhysicsConfig contains the level-wide ambient defaults
type PhysicsConfig struct {
	Gravity   float64 // px/s², applied when no contacted tile overrides it
	FrictionX float64 // horizontal damping factor (ground)
	FrictionY float64 // vertical damping factor (air)

	// Velocities with a magnitude below VelocitySnap are set to exactly zero
	VelocitySnap float64
	// Ambient gravity below this value lets the down input descend (ladders)
	DescendThreshold float64
	// Scales the phase argument of oscillating tiles
	OscillationRate float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX float64
	SpawnY float64
	Width  float64
	Height float64
	Mass   float64

	MoveForce float64
	JumpForce float64
	SwimForce float64
	AirJumps  int

	MaxHealth float64
}

// LevelConfig describes the playfield
type LevelConfig struct {
	Width           float64
	Height          float64
	InterfaceHeight float64

	// Walls adds boundary tiles around the playfield and the interface bar
	Walls         bool
	WallThickness float64

	// Broad phase cell size for the tile index
	CellSize int
}

// ExplosionConfig contains the death effect values
type ExplosionConfig struct {
	Particles int
	Radius    float64
	Speed     float64
	Fade      float64 // alpha multiplier per update
	DoneAlpha float64 // effect finishes once alpha drops below this
	Seed      int64
}

// Palette holds every color the game renders with
type Palette struct {
	Transparent color.NRGBA
	Black       color.NRGBA
	White       color.NRGBA
	Default     color.NRGBA
	Background  color.NRGBA
	Player      color.NRGBA
	Air         color.NRGBA
	Sand        color.NRGBA
	Rock        color.NRGBA
	Earth       color.NRGBA
	Grass       color.NRGBA
	Stone       color.NRGBA
	Rubber      color.NRGBA
	Water       color.NRGBA
	Ice         color.NRGBA
	Lava        color.NRGBA
	Slime       color.NRGBA
	Health      color.NRGBA
	Enemy       color.NRGBA
	Ladder      color.NRGBA
	Overlay     color.NRGBA // pause screen dimming
	Debug       color.NRGBA // debug overlay text and outlines
}

// Named returns the palette entry for a decoration color name.
func (p Palette) Named(name string) (color.NRGBA, bool) {
	switch name {
	case "transparent":
		return p.Transparent, true
	case "black":
		return p.Black, true
	case "white":
		return p.White, true
	case "default":
		return p.Default, true
	case "background":
		return p.Background, true
	case "air":
		return p.Air, true
	case "sand":
		return p.Sand, true
	case "rock":
		return p.Rock, true
	case "earth":
		return p.Earth, true
	case "grass":
		return p.Grass, true
	case "stone":
		return p.Stone, true
	}
	return color.NRGBA{}, false
}

// Config is built once at startup and shared read-only by the simulation and
// the frontend.
type Config struct {
	TimeStep  float64
	Physics   PhysicsConfig
	Player    PlayerConfig
	Level     LevelConfig
	Explosion ExplosionConfig
	Colors    Palette
	Debug     DebugConfig
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Show the debug overlay from the start
}

func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Default returns the standard configuration.
func Default() *Config {
	playerWidth := 1 * PixelsPerMeter
	playerHeight := 1.8 * PixelsPerMeter
	playerMass := playerWidth * playerHeight * KilogramsPerPixel // 72kg

	return &Config{
		TimeStep: TimeStep,
		Physics: PhysicsConfig{
			Gravity:          60 * PixelsPerMeter, // exaggerated for fast gameplay
			FrictionX:        0.95,
			FrictionY:        0.98,
			VelocitySnap:     1,
			DescendThreshold: 1,
			OscillationRate:  0.1,
		},
		Player: PlayerConfig{
			SpawnX:    1 * PixelsPerMeter,
			SpawnY:    1 * PixelsPerMeter,
			Width:     playerWidth,
			Height:    playerHeight,
			Mass:      playerMass,
			MoveForce: 1 * ForceUnit * playerMass,
			JumpForce: 25 * ForceUnit * playerMass,
			SwimForce: 2.5 * ForceUnit * playerMass,
			AirJumps:  1,
			MaxHealth: 100,
		},
		Level: LevelConfig{
			Width:           60 * PixelsPerMeter,
			Height:          30*PixelsPerMeter + 40,
			InterfaceHeight: 40,
			Walls:           true,
			WallThickness:   1,
			CellSize:        32,
		},
		Explosion: ExplosionConfig{
			Particles: 300,
			Radius:    3,
			Speed:     1.25,
			Fade:      0.95,
			DoneAlpha: 0.05,
			Seed:      1,
		},
		Colors: Palette{
			Transparent: rgba(0, 0, 0, 0),
			Black:       rgba(0, 0, 0, 1),
			White:       rgba(255, 255, 255, 1),
			Default:     rgba(63, 63, 63, 1),
			Background:  rgba(239, 239, 239, 1),
			Player:      rgba(0, 127, 191, 1),
			Air:         rgba(191, 223, 255, 1),
			Sand:        rgba(255, 223, 191, 1),
			Rock:        rgba(207, 207, 207, 1),
			Earth:       rgba(95, 0, 0, 1),
			Grass:       rgba(0, 127, 0, 1),
			Stone:       rgba(127, 127, 127, 1),
			Rubber:      rgba(63, 63, 63, 1),
			Water:       rgba(0, 255, 200, 0.5),
			Ice:         rgba(191, 255, 255, 1),
			Lava:        rgba(255, 0, 0, 0.67),
			Slime:       rgba(127, 159, 0, 0.5),
			Health:      rgba(159, 255, 0, 1),
			Enemy:       rgba(127, 0, 127, 1),
			Ladder:      rgba(191, 127, 0, 1),
			Overlay:     rgba(0, 0, 0, 0.5),
			Debug:       rgba(255, 0, 255, 1),
		},
	}
}

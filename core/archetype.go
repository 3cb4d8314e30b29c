package core

import "image/color"

// TileArchetype is an immutable bundle of tile properties shared by every tile
// placed with it. Numeric fields use zero for "unset": an unset friction,
// gravity or phase rate falls back to the ambient default, an unset force or
// health rate contributes nothing, an unset distance means the tile does not
// move on that axis.
type TileArchetype struct {
	Name  string
	Color color.NRGBA

	FrictionX float64
	FrictionY float64
	Gravity   float64
	ForceX    float64
	ForceY    float64

	// Health change per second while the player touches the tile
	HealthRate float64

	// Transcend tiles are overlapped, never pushed against
	Transcend bool
	// Foreground tiles are drawn after the player
	Foreground bool
	// Dispose the tile after the first contact
	DisposeOnContact bool

	// Oscillation amplitude and phase rate multiplier per axis
	DistanceX float64
	DistanceY float64
	VelocityX float64
	VelocityY float64

	// Triangle pattern drawn over the tile (spikes)
	Pattern     color.NRGBA
	PatternSize float64
}

// GravityOr returns the archetype's gravity override, or def when unset.
func (a TileArchetype) GravityOr(def float64) float64 {
	return or(a.Gravity, def)
}

// FrictionXOr returns the horizontal friction override, or def when unset.
func (a TileArchetype) FrictionXOr(def float64) float64 {
	return or(a.FrictionX, def)
}

// FrictionYOr returns the vertical friction override, or def when unset.
func (a TileArchetype) FrictionYOr(def float64) float64 {
	return or(a.FrictionY, def)
}

// MovesX reports whether tiles of this archetype oscillate horizontally.
func (a TileArchetype) MovesX() bool { return a.DistanceX != 0 }

// MovesY reports whether tiles of this archetype oscillate vertically.
func (a TileArchetype) MovesY() bool { return a.DistanceY != 0 }

// HasPattern reports whether the tile is drawn with a triangle pattern.
func (a TileArchetype) HasPattern() bool { return a.PatternSize > 0 }

func or(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

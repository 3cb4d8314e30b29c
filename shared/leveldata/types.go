// Package leveldata provides level layouts for the simulation: the built-in
// level and TMX files authored in Tiled. It holds plain data and does not
// depend on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/leondejong/platform-game/shared/gamemath"
)

// ErrNoTiles is returned for a level without any tile placement.
var ErrNoTiles = errors.New("level has no tiles")

// Data is a level layout in a single length unit.
type Data struct {
	Tiles       []Placement
	Decorations []Decoration
	Spawn       *Point
}

// Placement positions one tile of the named archetype.
type Placement struct {
	X, Y, W, H float64
	Archetype  string
}

// Rect returns the placement bounds.
func (p Placement) Rect() gamemath.AABB {
	return gamemath.AABB{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Decoration is a background rectangle without physics.
type Decoration struct {
	X, Y, W, H float64
	Color      string // palette name, see config.Palette.Named
}

// Point is a position in level units.
type Point struct {
	X, Y float64
}

// Scale returns a copy of d with every coordinate multiplied by factor. It is
// the one place unit conversion happens (meters to pixels for the built-in
// level).
func (d *Data) Scale(factor float64) *Data {
	out := &Data{
		Tiles:       make([]Placement, len(d.Tiles)),
		Decorations: make([]Decoration, len(d.Decorations)),
	}
	for i, p := range d.Tiles {
		out.Tiles[i] = Placement{X: p.X * factor, Y: p.Y * factor, W: p.W * factor, H: p.H * factor, Archetype: p.Archetype}
	}
	for i, r := range d.Decorations {
		out.Decorations[i] = Decoration{X: r.X * factor, Y: r.Y * factor, W: r.W * factor, H: r.H * factor, Color: r.Color}
	}
	if d.Spawn != nil {
		out.Spawn = &Point{X: d.Spawn.X * factor, Y: d.Spawn.Y * factor}
	}
	return out
}

// Validate checks every rectangle in the level.
func (d *Data) Validate() error {
	if len(d.Tiles) == 0 {
		return ErrNoTiles
	}
	for i, p := range d.Tiles {
		if err := p.Rect().Validate(); err != nil {
			return fmt.Errorf("tile %d (%s): %w", i, p.Archetype, err)
		}
	}
	for i, r := range d.Decorations {
		rect := gamemath.AABB{X: r.X, Y: r.Y, W: r.W, H: r.H}
		if err := rect.Validate(); err != nil {
			return fmt.Errorf("decoration %d: %w", i, err)
		}
	}
	return nil
}

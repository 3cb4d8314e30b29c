package core

import (
	"fmt"

	"github.com/leondejong/platform-game/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Tile is a positioned instance of an archetype. The level owns every tile;
// disposal is a flag and tiles are never removed from the level.
type Tile struct {
	Rect      gamemath.AABB
	Archetype TileArchetype
	Disposed  bool

	// Displacement of the last oscillation step, old position minus new
	DeltaX float64
	DeltaY float64

	originX   float64
	originY   float64
	originSet bool

	index  int
	object *resolv.Object
}

// NewTile creates a tile after validating its bounds.
func NewTile(rect gamemath.AABB, archetype TileArchetype) (*Tile, error) {
	if err := rect.Validate(); err != nil {
		return nil, fmt.Errorf("tile %s: %w", archetype.Name, err)
	}
	return &Tile{Rect: rect, Archetype: archetype}, nil
}

// Index returns the tile's position in the level's tile order.
func (t *Tile) Index() int { return t.index }

// Origin returns the position captured on the tile's first oscillation step.
func (t *Tile) Origin() (x, y float64, ok bool) {
	return t.originX, t.originY, t.originSet
}

// oscillate moves the tile around its origin by the given phases.
func (t *Tile) oscillate(phaseX, phaseY float64) {
	a := t.Archetype
	if !t.originSet {
		t.originX, t.originY = t.Rect.X, t.Rect.Y
		t.originSet = true
	}
	if a.MovesX() {
		old := t.Rect.X
		t.Rect.X = t.originX + phaseX*a.DistanceX
		t.DeltaX = old - t.Rect.X
	}
	if a.MovesY() {
		old := t.Rect.Y
		t.Rect.Y = t.originY + phaseY*a.DistanceY
		t.DeltaY = old - t.Rect.Y
	}
}

package core

import (
	"fmt"
	"log"

	"github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/shared/gamemath"
	"github.com/leondejong/platform-game/shared/leveldata"
)

// Ambient holds the level-wide physics recomputed every tick from the tiles
// the player touched on the previous tick.
type Ambient struct {
	Gravity   float64
	FrictionX float64
	FrictionY float64
	ForceX    float64
	ForceY    float64
}

// Level owns the tiles and the ambient physics.
type Level struct {
	cfg         *config.Config
	tiles       []*Tile
	decorations []leveldata.Decoration
	spawnX      float64
	spawnY      float64
	index       *tileIndex

	Ambient Ambient
}

// NewLevel builds a level from data that is already in simulation units.
// Every archetype must exist in the catalog and every rectangle must be valid.
func NewLevel(cfg *config.Config, catalog *Catalog, data *leveldata.Data) (*Level, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("new level: %w", err)
	}

	l := &Level{
		cfg:         cfg,
		decorations: data.Decorations,
		spawnX:      cfg.Player.SpawnX,
		spawnY:      cfg.Player.SpawnY,
	}
	if data.Spawn != nil {
		l.spawnX, l.spawnY = data.Spawn.X, data.Spawn.Y
	}

	for i, p := range data.Tiles {
		archetype, err := catalog.Lookup(p.Archetype)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		if err := l.add(p.Rect(), archetype); err != nil {
			return nil, err
		}
	}
	if cfg.Level.Walls {
		if err := l.addWalls(catalog); err != nil {
			return nil, err
		}
	}

	l.index = newTileIndex(l.tiles, cfg.Level.CellSize)
	l.resetAmbient()

	log.Printf("Loaded level: %d tiles, %d decorations, spawn (%.0f, %.0f)",
		len(l.tiles), len(l.decorations), l.spawnX, l.spawnY)
	return l, nil
}

func (l *Level) add(rect gamemath.AABB, archetype TileArchetype) error {
	t, err := NewTile(rect, archetype)
	if err != nil {
		return fmt.Errorf("tile %d: %w", len(l.tiles), err)
	}
	t.index = len(l.tiles)
	l.tiles = append(l.tiles, t)
	return nil
}

// addWalls keeps the player inside the playfield and puts a solid interface
// bar along the bottom.
func (l *Level) addWalls(catalog *Catalog) error {
	standard, err := catalog.Lookup("standard")
	if err != nil {
		return err
	}
	w, h, t := l.cfg.Level.Width, l.cfg.Level.Height, l.cfg.Level.WallThickness
	bar := l.cfg.Level.InterfaceHeight
	walls := []gamemath.AABB{
		{X: 0, Y: -t, W: w, H: t},
		{X: w, Y: 0, W: t, H: h},
		{X: t, Y: h, W: w, H: t},
		{X: -t, Y: 0, W: t, H: h},
		{X: 0, Y: h - bar, W: w, H: bar},
	}
	for _, r := range walls {
		if err := l.add(r, standard); err != nil {
			return err
		}
	}
	return nil
}

// Tiles returns every tile in level order, disposed ones included.
func (l *Level) Tiles() []*Tile { return l.tiles }

// Decorations returns the background rectangles.
func (l *Level) Decorations() []leveldata.Decoration { return l.decorations }

// Spawn returns the player's spawn point.
func (l *Level) Spawn() (float64, float64) { return l.spawnX, l.spawnY }

// Update advances the oscillating tiles and recomputes the ambient physics
// from contacts, the tiles the player touched during its last sweep.
func (l *Level) Update(dt, elapsed float64, contacts []*Tile) {
	l.moveTiles(dt, elapsed)
	l.applyContacts(contacts)
}

func (l *Level) moveTiles(dt, elapsed float64) {
	rate := l.cfg.Physics.OscillationRate
	for _, t := range l.tiles {
		a := t.Archetype
		if t.Disposed || !(a.MovesX() || a.MovesY()) {
			continue
		}
		t.oscillate(
			gamemath.Phase(dt, elapsed, a.VelocityX, rate),
			gamemath.Phase(dt, elapsed, a.VelocityY, rate),
		)
		l.index.move(t)
	}
}

func (l *Level) resetAmbient() {
	p := l.cfg.Physics
	l.Ambient = Ambient{
		Gravity:   p.Gravity,
		FrictionX: p.FrictionX,
		FrictionY: p.FrictionY,
	}
}

// applyContacts overwrites the ambient values tile by tile. The last
// contact wins for every field; fields a tile leaves unset fall back to the
// level default, not to an earlier tile's value.
func (l *Level) applyContacts(contacts []*Tile) {
	l.resetAmbient()
	p := l.cfg.Physics
	for _, t := range contacts {
		a := t.Archetype
		l.Ambient = Ambient{
			Gravity:   a.GravityOr(p.Gravity),
			FrictionX: a.FrictionXOr(p.FrictionX),
			FrictionY: a.FrictionYOr(p.FrictionY),
			ForceX:    a.ForceX,
			ForceY:    a.ForceY,
		}
		if a.DisposeOnContact && !t.Disposed {
			t.Disposed = true
			l.index.remove(t)
		}
	}
}

// candidates returns the live tiles that may intersect area, in level order.
func (l *Level) candidates(area gamemath.AABB) []*Tile {
	found := l.index.query(area)
	live := found[:0]
	for _, t := range found {
		if !t.Disposed {
			live = append(live, t)
		}
	}
	return live
}

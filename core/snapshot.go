package core

import (
	"errors"
	"fmt"
)

// ErrSnapshotMismatch is returned when a snapshot does not fit the level it
// is restored into.
var ErrSnapshotMismatch = errors.New("snapshot does not match level")

// Snapshot is the complete simulation state at a tick boundary.
type Snapshot struct {
	Steps       uint64      `json:"steps"`
	Elapsed     float64     `json:"elapsed"`
	Accumulator float64     `json:"accumulator"`
	Level       LevelState  `json:"level"`
	Player      PlayerState `json:"player"`
}

// LevelState is the mutable part of a level.
type LevelState struct {
	Ambient Ambient     `json:"ambient"`
	Tiles   []TileState `json:"tiles"`
}

// TileState is the mutable part of a tile.
type TileState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Disposed  bool    `json:"disposed,omitempty"`
	DeltaX    float64 `json:"dx,omitempty"`
	DeltaY    float64 `json:"dy,omitempty"`
	OriginX   float64 `json:"ox,omitempty"`
	OriginY   float64 `json:"oy,omitempty"`
	OriginSet bool    `json:"originSet,omitempty"`
}

// PlayerState is the mutable part of a player. Contacted tiles are stored as
// indices into the level's tile order.
type PlayerState struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	VX       float64  `json:"vx"`
	VY       float64  `json:"vy"`
	AX       float64  `json:"ax"`
	AY       float64  `json:"ay"`
	FX       float64  `json:"fx"`
	FY       float64  `json:"fy"`
	Contact  Contacts `json:"contact"`
	Health   float64  `json:"health"`
	AirJumps int      `json:"airJumps"`
	Up       bool     `json:"up,omitempty"`
	Tiles    []int    `json:"tiles,omitempty"`
	Disposed bool     `json:"disposed,omitempty"`
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:       s.steps,
		Elapsed:     s.elapsed,
		Accumulator: s.accumulator,
		Level: LevelState{
			Ambient: s.Level.Ambient,
			Tiles:   make([]TileState, len(s.Level.tiles)),
		},
	}
	for i, t := range s.Level.tiles {
		snap.Level.Tiles[i] = TileState{
			X:         t.Rect.X,
			Y:         t.Rect.Y,
			Disposed:  t.Disposed,
			DeltaX:    t.DeltaX,
			DeltaY:    t.DeltaY,
			OriginX:   t.originX,
			OriginY:   t.originY,
			OriginSet: t.originSet,
		}
	}

	p := s.Player
	snap.Player = PlayerState{
		X: p.Rect.X, Y: p.Rect.Y,
		VX: p.VX, VY: p.VY,
		AX: p.AX, AY: p.AY,
		FX: p.FX, FY: p.FY,
		Contact:  p.Contact,
		Health:   p.Health,
		AirJumps: p.AirJumps,
		Up:       p.up,
		Disposed: p.state == Disposed,
	}
	for _, t := range p.tiles {
		snap.Player.Tiles = append(snap.Player.Tiles, t.index)
	}
	return snap
}

// Restore replaces the current state with snap. A disposed player restarts
// its death effect.
func (s *Simulation) Restore(snap Snapshot) error {
	tiles := s.Level.tiles
	if len(snap.Level.Tiles) != len(tiles) {
		return fmt.Errorf("%w: %d tiles, level has %d", ErrSnapshotMismatch, len(snap.Level.Tiles), len(tiles))
	}
	contacts := make([]*Tile, 0, len(snap.Player.Tiles))
	for _, i := range snap.Player.Tiles {
		if i < 0 || i >= len(tiles) {
			return fmt.Errorf("%w: contact index %d", ErrSnapshotMismatch, i)
		}
		contacts = append(contacts, tiles[i])
	}

	s.steps = snap.Steps
	s.elapsed = snap.Elapsed
	s.accumulator = snap.Accumulator

	s.Level.Ambient = snap.Level.Ambient
	for i, ts := range snap.Level.Tiles {
		t := tiles[i]
		wasDisposed := t.Disposed
		t.Rect.X, t.Rect.Y = ts.X, ts.Y
		t.Disposed = ts.Disposed
		t.DeltaX, t.DeltaY = ts.DeltaX, ts.DeltaY
		t.originX, t.originY, t.originSet = ts.OriginX, ts.OriginY, ts.OriginSet
		switch {
		case t.Disposed:
			s.Level.index.remove(t)
		case wasDisposed:
			s.Level.index.add(t)
		default:
			s.Level.index.move(t)
		}
	}

	p := s.Player
	ps := snap.Player
	p.Rect.X, p.Rect.Y = ps.X, ps.Y
	p.VX, p.VY = ps.VX, ps.VY
	p.AX, p.AY = ps.AX, ps.AY
	p.FX, p.FY = ps.FX, ps.FY
	p.Contact = ps.Contact
	p.Health = ps.Health
	p.AirJumps = ps.AirJumps
	p.up = ps.Up
	p.tiles = contacts
	p.dx, p.dy = 0, 0

	// Drop a stale respawn request
	select {
	case <-p.respawn:
	default:
	}
	p.state = Alive
	if ps.Disposed {
		p.state = Disposed
		p.effect.Setup(p.Rect.Center())
	}
	return nil
}

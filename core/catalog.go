package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/leondejong/platform-game/config"
)

// ErrUnknownArchetype is returned when a level references an archetype the
// catalog does not define.
var ErrUnknownArchetype = errors.New("unknown tile archetype")

// Catalog holds the named tile archetypes.
type Catalog struct {
	byName map[string]TileArchetype
	legend []string
}

// NewCatalog builds the standard archetypes from the configuration.
func NewCatalog(cfg *config.Config) *Catalog {
	c := cfg.Colors
	gravity := cfg.Physics.Gravity
	health := cfg.Player.MaxHealth
	conveyor := 0.75 * config.ForceUnit * cfg.Player.Mass

	archetypes := []TileArchetype{
		{Name: "empty", Color: c.Default},
		{Name: "standard", Color: c.Default},
		{Name: "earth", Color: c.Earth, FrictionX: 0.97},
		{Name: "grass", Color: c.Grass, FrictionX: 0.95},
		{Name: "stone", Color: c.Stone, FrictionX: 0.93},
		{Name: "rubber", Color: c.Rubber, FrictionX: 0.9},
		{Name: "ice", Color: c.Ice, FrictionX: 0.99},
		{
			Name: "water", Color: c.Water,
			FrictionX: 0.85, FrictionY: 0.85, Gravity: 0.75 * gravity,
			Transcend: true, Foreground: true,
		},
		{
			Name: "lava", Color: c.Lava,
			HealthRate: -0.5 * health,
			FrictionX:  0.75, FrictionY: 0.75, Gravity: 0.1 * gravity,
			Transcend: true, Foreground: true,
		},
		{
			Name: "slime", Color: c.Slime,
			FrictionX: 0.7, FrictionY: 0.7, Gravity: 0.5 * gravity,
			Transcend: true, Foreground: true,
		},
		{
			Name: "spikes", Color: c.Transparent,
			Pattern: c.Stone, PatternSize: 1 * config.PixelsPerMeter,
			HealthRate: -health * config.FPS,
		},
		{
			Name: "health", Color: c.Health,
			HealthRate: 0.25 * health * config.FPS,
			Transcend:  true, DisposeOnContact: true,
		},
		{
			Name: "enemy", Color: c.Enemy,
			HealthRate: -health * config.FPS,
			DistanceX:  2.5 * config.PixelsPerMeter, VelocityX: 0.75,
			DisposeOnContact: true,
		},
		{
			Name: "ladder", Color: c.Ladder,
			Transcend: true, Gravity: 0.001,
			FrictionX: 0.75, FrictionY: 0.75,
		},
		{Name: "platformH", Color: c.Stone, DistanceX: 4 * config.PixelsPerMeter, VelocityX: 1},
		{
			Name: "platformV", Color: c.Stone,
			DistanceY: 11 * config.PixelsPerMeter, VelocityY: 0.5,
			Gravity: 10 * gravity,
		},
		{Name: "conveyorL", Color: c.Rubber, ForceX: -conveyor},
		{Name: "conveyorR", Color: c.Rubber, ForceX: conveyor},
	}

	cat := &Catalog{
		byName: make(map[string]TileArchetype, len(archetypes)),
		legend: []string{"earth", "lava", "ladder", "slime", "health", "grass", "rubber", "stone", "water", "ice", "enemy"},
	}
	for _, a := range archetypes {
		cat.byName[a.Name] = a
	}
	return cat
}

// Lookup returns the archetype registered under name.
func (c *Catalog) Lookup(name string) (TileArchetype, error) {
	a, ok := c.byName[name]
	if !ok {
		return TileArchetype{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
	return a, nil
}

// Names returns all archetype names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Legend returns the archetypes shown in the interface legend.
func (c *Catalog) Legend() []TileArchetype {
	out := make([]TileArchetype, 0, len(c.legend))
	for _, name := range c.legend {
		out = append(out, c.byName[name])
	}
	return out
}

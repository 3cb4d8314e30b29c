package archetypes

import (
	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Simulation,
		components.Level,
		components.Input,
		components.Settings,
	)
	Player = newArchetype(
		tags.Player,
		components.Explosion,
		components.HealthBar,
	)
	HUD = newArchetype(
		tags.HUD,
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		frontend.LayerBackground,
		append(a.components, cs...)...,
	))
	return e
}

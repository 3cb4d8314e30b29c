package factory

import (
	"github.com/leondejong/platform-game/archetypes"
	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/effects"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the render-side player entity. The simulated player
// lives in the game entity's simulation.
func CreatePlayer(ecs *ecs.ECS, c *cfg.Config, explosion *effects.Explosion) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Explosion.SetValue(player, components.ExplosionData{Explosion: explosion})

	max := float32(c.Player.MaxHealth)
	components.HealthBar.SetValue(player, components.HealthBarData{
		Shown:  max,
		Target: max,
	})
	return player
}

package factory

import (
	"fmt"

	"github.com/leondejong/platform-game/archetypes"
	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/core"
	"github.com/leondejong/platform-game/effects"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame builds the simulation for a level and spawns the game and player
// entities. The level data must already be in pixels.
func CreateGame(ecs *ecs.ECS, c *cfg.Config, name string, data *leveldata.Data) (*donburi.Entry, error) {
	catalog := core.NewCatalog(c)
	level, err := core.NewLevel(c, catalog, data)
	if err != nil {
		return nil, fmt.Errorf("create game %s: %w", name, err)
	}

	explosion := effects.NewExplosion(c.Explosion)
	player, err := core.NewPlayer(c, level, explosion)
	if err != nil {
		return nil, fmt.Errorf("create game %s: %w", name, err)
	}

	game := archetypes.Game.Spawn(ecs)
	components.Simulation.SetValue(game, components.SimulationData{
		Sim:    core.NewSimulation(c, level, player),
		Config: c,
	})
	components.Level.SetValue(game, components.LevelData{
		Name:    name,
		Data:    data,
		Catalog: catalog,
	})
	components.Settings.SetValue(game, components.SettingsData{
		Debug: c.Debug.Overlay,
	})

	CreatePlayer(ecs, c, explosion)
	return game, nil
}

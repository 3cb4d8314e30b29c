package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/shared/leveldata"
	"github.com/leondejong/platform-game/systems"
	factory2 "github.com/leondejong/platform-game/systems/factory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs       *ecs.ECS
	config    *cfg.Config
	levelName string
	levelData *leveldata.Data
	once      sync.Once
	err       error
}

// NewPlatformerScene creates the scene for a level whose data is already in
// pixels. Nothing is built until the first update.
func NewPlatformerScene(c *cfg.Config, levelName string, data *leveldata.Data) *PlatformerScene {
	return &PlatformerScene{config: c, levelName: levelName, levelData: data}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, the simulation reads it in the same frame
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePersistence))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(frontend.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(frontend.LayerPlayer, systems.DrawPlayer)
	ecs.AddRenderer(frontend.LayerForeground, systems.DrawForeground)
	ecs.AddRenderer(frontend.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(frontend.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(frontend.LayerHUD, systems.DrawPause)

	game, err := factory2.CreateGame(ecs, ps.config, ps.levelName, ps.levelData)
	if err != nil {
		ps.err = err
		return
	}
	level := components.Level.Get(game)
	if _, err := factory2.CreateHUD(ecs, ps.config, level.Catalog); err != nil {
		ps.err = fmt.Errorf("create hud: %w", err)
		return
	}

	// The command line wins over the saved toggle
	if !ps.config.Debug.Overlay {
		saved, _ := systems.LoadSettings()
		systems.ApplySavedSettings(ecs, saved)
	}

	ps.ecs = ecs
}

package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarHeight     = 4
	hudEaseSeconds   = 0.25
	hudStatusSeconds = 2
)

// UpdateHUD refreshes the interface bar from the simulation.
func UpdateHUD(ecs *ecs.ECS) {
	sim := GetSimulation(ecs)
	hudEntry, ok := components.HUD.First(ecs.World)
	if sim == nil || !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	health := sim.Sim.Player.Health

	hud.Health.Label = healthText(health)
	if hud.StatusFrames > 0 {
		hud.StatusFrames--
		if hud.StatusFrames == 0 {
			hud.Status.Label = ""
		}
	}

	if playerEntry, ok := components.HealthBar.First(ecs.World); ok {
		easeHealth(components.HealthBar.Get(playerEntry), health, float32(1/float64(ebiten.TPS())))
	}

	hud.UI.Update()
}

// DrawHUD draws the interface bar and the eased health strip on top of it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(ecs)
	hudEntry, ok := components.HUD.First(ecs.World)
	if sim == nil || !ok {
		return
	}
	components.HUD.Get(hudEntry).UI.Draw(screen)

	playerEntry, ok := components.HealthBar.First(ecs.World)
	if !ok {
		return
	}
	bar := components.HealthBar.Get(playerEntry)
	c := sim.Config
	ratio := bar.Shown / float32(c.Player.MaxHealth)
	y := float32(c.Level.Height - c.Level.InterfaceHeight)
	vector.FillRect(screen, 0, y, float32(c.Level.Width)*ratio, hudBarHeight, c.Colors.Health, false)
}

// SetStatus shows msg in the interface bar for a few seconds.
func SetStatus(ecs *ecs.ECS, msg string) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	hud.Status.Label = msg
	hud.StatusFrames = hudStatusSeconds * cfg.FPS
}

func healthText(health float64) string {
	return fmt.Sprintf("Health: %d", int(math.Floor(health)))
}

// easeHealth moves the displayed health toward health. A new target restarts
// the tween from the value currently shown.
func easeHealth(bar *components.HealthBarData, health float64, dt float32) {
	target := float32(health)
	if target != bar.Target {
		bar.Target = target
		bar.Tween = gween.New(bar.Shown, target, hudEaseSeconds, ease.OutQuad)
	}
	if bar.Tween == nil {
		return
	}
	shown, done := bar.Tween.Update(dt)
	bar.Shown = shown
	if done {
		bar.Tween = nil
	}
}

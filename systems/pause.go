package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE the simulation.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if !GetAction(input, frontend.ActionPause).JustPressed {
		return
	}
	pause.IsPaused = !pause.IsPaused
	if !pause.IsPaused {
		// Restart the frame clock so the pause is not simulated
		if sim := GetSimulation(ecs); sim != nil {
			sim.LastFrame = time.Time{}
		}
	}
}

// DrawPause dims the screen while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}
	sim := GetSimulation(ecs)
	if sim == nil {
		return
	}
	colors := sim.Config.Colors

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, colors.Overlay, false)

	face := fonts.Title.Get()
	msg := "Paused"
	bounds := text.BoundString(face, msg)
	x := (int(width) - bounds.Dx()) / 2
	y := int(height) / 2
	text.Draw(screen, msg, face, x, y, colors.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

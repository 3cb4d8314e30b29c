package systems

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/core"
	"github.com/leondejong/platform-game/effects"
	"github.com/leondejong/platform-game/fonts"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 14

// UpdateDebug toggles the debug overlay and remembers the choice.
func UpdateDebug(ecs *ecs.ECS) {
	if !GetAction(getOrCreateInput(ecs), frontend.ActionDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	SaveCurrentSettings(settings)
}

// DrawDebug outlines the tiles the player touched and prints the simulation
// state in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	sim := GetSimulation(ecs)
	if sim == nil {
		return
	}
	c := sim.Config.Colors.Debug

	p := sim.Sim.Player
	for _, t := range p.Tiles() {
		r := t.Rect
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
	}
	r := p.Rect
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)

	var explosion *effects.Explosion
	if entry, ok := components.Explosion.First(ecs.World); ok {
		explosion = components.Explosion.Get(entry).Explosion
	}

	face := fonts.Mono.Get()
	for i, line := range debugLines(sim, explosion) {
		text.Draw(screen, line, face, 8, 16+i*debugLineHeight, c)
	}
}

func debugLines(sim *components.SimulationData, explosion *effects.Explosion) []string {
	p := sim.Sim.Player
	amb := sim.Sim.Level.Ambient

	names := make([]string, 0, len(p.Tiles()))
	for _, t := range p.Tiles() {
		names = append(names, fmt.Sprintf("%s#%d", t.Archetype.Name, t.Index()))
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f  steps %d (+%d)", ebiten.ActualTPS(), ebiten.ActualFPS(), sim.Sim.Steps(), sim.StepsLastFrame),
		fmt.Sprintf("pos %.1f, %.1f  vel %.1f, %.1f", p.Rect.X, p.Rect.Y, p.VX, p.VY),
		fmt.Sprintf("health %.1f  air jumps %d  %s", p.Health, p.AirJumps, p.State()),
		fmt.Sprintf("contact %s", contactString(p.Contact)),
		fmt.Sprintf("tiles [%s]", strings.Join(names, " ")),
		fmt.Sprintf("gravity %.3g  friction %.2f, %.2f  force %.0f, %.0f",
			amb.Gravity, amb.FrictionX, amb.FrictionY, amb.ForceX, amb.ForceY),
	}
	if p.Disposed() && explosion != nil {
		x, y := explosion.Center()
		lines = append(lines, fmt.Sprintf("explosion at %.0f, %.0f  step %d  alpha %.2f",
			x, y, explosion.Iterations(), explosion.Alpha()))
	}
	return lines
}

func contactString(c core.Contacts) string {
	var b strings.Builder
	for _, side := range []struct {
		set  bool
		name byte
	}{{c.Top, 'T'}, {c.Right, 'R'}, {c.Bottom, 'B'}, {c.Left, 'L'}} {
		if side.set {
			b.WriteByte(side.name)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

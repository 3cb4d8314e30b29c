package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/core"
	"github.com/yohamta/donburi/ecs"
)

var (
	// whitePixel is the source image for solid-color triangles
	whitePixel *ebiten.Image

	triangleVertices []ebiten.Vertex
	triangleIndices  []uint16
)

// DrawBackground draws the decorations and every tile behind the player.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(ecs)
	if sim == nil {
		return
	}
	colors := sim.Config.Colors
	screen.Fill(colors.Background)

	for _, d := range sim.Sim.Level.Decorations() {
		c, ok := colors.Named(d.Color)
		if !ok {
			c = colors.Default
		}
		vector.FillRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), c, false)
	}
	drawTiles(screen, sim.Sim.Level, frontend.LayerBackground)
}

// DrawForeground draws the tiles that cover the player, such as water.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(ecs)
	if sim == nil {
		return
	}
	drawTiles(screen, sim.Sim.Level, frontend.LayerForeground)
}

// DrawPlayer draws the player, or its explosion while it is disposed.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(ecs)
	if sim == nil {
		return
	}
	p := sim.Sim.Player
	if !p.Disposed() {
		r := p.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), sim.Config.Colors.Player, false)
		return
	}

	entry, ok := components.Explosion.First(ecs.World)
	if !ok {
		return
	}
	explosion := components.Explosion.Get(entry).Explosion
	alpha := explosion.Alpha()
	for _, pt := range explosion.Particles() {
		c := pt.Color
		c.A = uint8(float64(c.A) * alpha)
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.R), c, true) //nolint:staticcheck // TODO: migrate to FillCircle
	}
}

func drawTiles(screen *ebiten.Image, level *core.Level, layer ecs.LayerID) {
	for _, t := range level.Tiles() {
		a := t.Archetype
		if t.Disposed || layerOf(a) != layer {
			continue
		}
		r := t.Rect
		if a.Color.A > 0 {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), a.Color, false)
		}
		if a.HasPattern() {
			drawPattern(screen, t)
		}
	}
}

// drawPattern fills a tile with upward triangles of the archetype's pattern
// size, clipped to whole cells starting at the top-left corner.
func drawPattern(screen *ebiten.Image, t *core.Tile) {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	a := t.Archetype
	size := a.PatternSize
	cr, cg, cb, ca := colorScale(a.Pattern)

	triangleVertices = triangleVertices[:0]
	triangleIndices = triangleIndices[:0]
	for y := 0.0; y < t.Rect.H; y += size {
		for x := 0.0; x < t.Rect.W; x += size {
			ox, oy := float32(t.Rect.X+x), float32(t.Rect.Y+y)
			s := float32(size)
			base := uint16(len(triangleVertices))
			triangleVertices = append(triangleVertices,
				ebiten.Vertex{DstX: ox, DstY: oy + s, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
				ebiten.Vertex{DstX: ox + s, DstY: oy + s, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
				ebiten.Vertex{DstX: ox + s/2, DstY: oy, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
			)
			triangleIndices = append(triangleIndices, base, base+1, base+2)
		}
	}
	screen.DrawTriangles(triangleVertices, triangleIndices, whitePixel, &ebiten.DrawTrianglesOptions{})
}

// colorScale converts c to straight-alpha vertex color components.
func colorScale(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

// layerOf returns the render layer a tile belongs to.
func layerOf(a core.TileArchetype) ecs.LayerID {
	if a.Foreground {
		return frontend.LayerForeground
	}
	return frontend.LayerBackground
}

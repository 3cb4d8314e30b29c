package factory

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leondejong/platform-game/archetypes"
	"github.com/leondejong/platform-game/components"
	cfg "github.com/leondejong/platform-game/config"
	"github.com/leondejong/platform-game/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	legendSwatch  = 20
	legendSpacing = 12
)

// CreateHUD builds the interface bar along the bottom of the screen: the
// health readout, the tile legend and a status line for save messages.
func CreateHUD(ecs *ecs.ECS, c *cfg.Config, catalog *core.Catalog) (*donburi.Entry, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var face text.Face = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	labelColor := &widget.LabelColor{Idle: c.Colors.Black}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 10, Left: 25, Right: 25}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(c.Colors.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(legendSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(c.Level.Width), int(c.Level.InterfaceHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	health := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Health: %d", int(c.Player.MaxHealth)), &face, labelColor),
	)
	bar.AddChild(health)

	for _, a := range catalog.Legend() {
		bar.AddChild(legendEntry(a.Name, a.Color, &face, labelColor))
	}

	status := widget.NewLabel(
		widget.LabelOpts.Text("", &face, labelColor),
	)
	bar.AddChild(status)

	root.AddChild(bar)

	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{
		UI:     &ebitenui.UI{Container: root},
		Health: health,
		Status: status,
	})
	return hud, nil
}

func legendEntry(name string, swatch color.NRGBA, face *text.Face, labelColor *widget.LabelColor) *widget.Container {
	entry := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	entry.AddChild(widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(swatch)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(legendSwatch, legendSwatch),
		),
	))
	entry.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, face, labelColor),
	))
	return entry
}

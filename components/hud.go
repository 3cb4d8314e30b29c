package components

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi"
)

// HUDData holds the interface bar and the widgets updated every frame.
type HUDData struct {
	UI     *ebitenui.UI
	Health *widget.Label
	Status *widget.Label

	// StatusFrames counts down until the status line is cleared
	StatusFrames int
}

var HUD = donburi.NewComponentType[HUDData]()

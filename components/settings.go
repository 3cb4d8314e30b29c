package components

import "github.com/yohamta/donburi"

// SettingsData holds the player-facing toggles that survive restarts
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

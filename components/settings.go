package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that survive scene changes through storage.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()

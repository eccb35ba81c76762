package components

import "github.com/yohamta/donburi"

// SettingsData holds the user toggles that survive restarts
type SettingsData struct {
	Fullscreen bool
	Wave       bool
	Debug      bool // Show the HUD overlay
	Quit       bool // Set when the user asked to close the window
}

var Settings = donburi.NewComponentType[SettingsData]()

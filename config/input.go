package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical user action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleFullscreen
	ActionToggleWave
	ActionToggleHUD
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyF11},
			},
			ActionToggleWave: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyTab, ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}

package systems

import (
	"log"

	"github.com/automoto/trailstack/components"
	cfg "github.com/automoto/trailstack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies toggles from the keyboard and persists them.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)
	changed := false

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if GetAction(input, cfg.ActionToggleWave).JustPressed {
		settings.Wave = !settings.Wave
		cfg.Trail.Wave.Enabled = settings.Wave
		if session, ok := trailSession(ecs.World); ok {
			session.SetWave(settings.Wave)
		}
		changed = true
	}

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.ShowHUD = settings.Debug
		changed = true
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}

	if changed {
		if settings.Debug {
			log.Printf("[settings] fullscreen=%t wave=%t debug=%t",
				settings.Fullscreen, settings.Wave, settings.Debug)
		}
		SaveCurrentSettings(settings)
	}
}

// QuitRequested reports whether the user asked to close the window.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the current configuration on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Fullscreen: ebiten.IsFullscreen(),
			Wave:       cfg.Trail.Wave.Enabled,
			Debug:      cfg.Debug.ShowHUD,
		})
	}
	return components.Settings.Get(entry)
}

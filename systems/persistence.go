package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/trailstack/components"
	cfg "github.com/automoto/trailstack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	Wave       bool `json:"wave"`
	Debug      bool `json:"debug"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "trailstack",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when storage is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[settings] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the toggles from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen: s.Fullscreen,
		Wave:       s.Wave,
		Debug:      s.Debug,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("[settings] %v", err)
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Trail.Wave.Enabled = saved.Wave
	cfg.Debug.ShowHUD = saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}

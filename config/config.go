package config

import (
	"image/color"

	"github.com/automoto/trailstack/trail"
)

// HUDConfig contains debug overlay configuration
type HUDConfig struct {
	BoxColor  color.RGBA
	TextColor color.RGBA
	Padding   float64
	LineGap   int
}

// AssetsConfig controls where trail images come from
type AssetsConfig struct {
	ImageDir         string
	PlaceholderCount int // Generated cards used when ImageDir is empty
	PlaceholderSize  int
	PlaceholderHues  []color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool
	Seed    uint64 // 0 = seed from the clock
}

// Global configuration instances
var C *Config
var Trail trail.Config
var HUD HUDConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	Coral        = color.RGBA{R: 255, G: 111, B: 97, A: 255}
	Amber        = color.RGBA{R: 255, G: 190, B: 60, A: 255}
	Mint         = color.RGBA{R: 90, G: 220, B: 170, A: 255}
	Sky          = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	Lilac        = color.RGBA{R: 180, G: 130, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "trailstack",
	}

	Trail = trail.DefaultConfig()

	HUD = HUDConfig{
		BoxColor:  BlackOverlay,
		TextColor: White,
		Padding:   8,
		LineGap:   14,
	}

	Assets = AssetsConfig{
		PlaceholderCount: 8,
		PlaceholderSize:  96,
		PlaceholderHues:  []color.RGBA{Coral, Amber, Mint, Sky, Lilac},
	}

	Debug = DebugConfig{}
}

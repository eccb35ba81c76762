package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/fonts"
	"github.com/automoto/trailstack/scenes"
	"github.com/automoto/trailstack/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadFont(fonts.HUD, gomono.TTF); err != nil {
		log.Fatal(err)
	}
	if err := fonts.LoadFontWithSize(fonts.Label, gobold.TTF, 28); err != nil {
		log.Fatal(err)
	}

	return &Game{
		scene: scenes.NewTrailScene(),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout matches the logical screen to the window, so the viewport grows
// and shrinks with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg.C.Width, cfg.C.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	imageDir := flag.String("images", "", "Directory of trail images (png, jpg, gif); empty uses generated cards")
	placeholders := flag.Int("placeholders", cfg.Assets.PlaceholderCount, "Number of generated cards when -images is empty")
	wave := flag.Bool("wave", false, "Enable the sinusoidal trailing wave")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	debug := flag.Bool("debug", false, "Show the debug HUD and log transitions")
	seed := flag.Uint64("seed", 0, "Random seed (0 = from the clock)")
	width := flag.Int("width", cfg.C.Width, "Initial window width")
	height := flag.Int("height", cfg.C.Height, "Initial window height")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Printf("Warning: %v", err)
	} else if saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags given explicitly win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wave":
			cfg.Trail.Wave.Enabled = *wave
		case "fullscreen":
			ebiten.SetFullscreen(*fullscreen)
		case "debug":
			cfg.Debug.ShowHUD = *debug
		}
	})
	cfg.Assets.ImageDir = *imageDir
	cfg.Assets.PlaceholderCount = *placeholders
	cfg.Debug.Seed = *seed
	cfg.C.Width, cfg.C.Height = *width, *height

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

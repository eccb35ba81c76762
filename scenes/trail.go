package scenes

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/trailstack/assets"
	"github.com/automoto/trailstack/components"
	cfg "github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/systems"
	"github.com/automoto/trailstack/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type TrailScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewTrailScene() *TrailScene {
	return &TrailScene{}
}

func (ts *TrailScene) Update() error {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if systems.QuitRequested(ts.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ts *TrailScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TrailScene) configure() {
	images := assets.TrailImages()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock first: every later system reads this frame's time
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Pointer events are queued, then delivered inside UpdateTrail
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateTrail)
	ecs.AddSystem(systems.UpdateTweens)

	ecs.AddRenderer(components.LayerDefault, systems.DrawTrail)
	ecs.AddRenderer(components.LayerOverlay, systems.DrawHUD)

	ts.ecs = ecs

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	systems.SubscribeTrail(ecs.World)
	factory.CreateTrail(ecs, images, cfg.Trail, rng)

	if cfg.Debug.ShowHUD {
		log.Printf("[trail] %d images, seed %d", len(images), seed)
	}
}

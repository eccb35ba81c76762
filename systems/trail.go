package systems

import (
	"log"

	"github.com/automoto/trailstack/components"
	cfg "github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/events"
	"github.com/automoto/trailstack/trail"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeTrail routes pointer events to the trail session.
func SubscribeTrail(w donburi.World) {
	events.PointerMoved.Subscribe(w, onPointerMoved)
}

func onPointerMoved(w donburi.World, e events.PointerMovedEvent) {
	session, ok := trailSession(w)
	if !ok {
		return
	}

	before := session.State()
	session.PointerMoved(e.Time, e.X, e.Y)
	if cfg.Debug.ShowHUD && before != session.State() {
		log.Printf("[trail] recalled to (%.0f, %.0f)", e.X, e.Y)
	}
}

// UpdateTrail delivers queued pointer events and runs one frame of the trail.
// Must run after UpdatePointer and before UpdateTweens.
func UpdateTrail(ecs *ecs.ECS) {
	session, ok := trailSession(ecs.World)
	if !ok {
		return
	}
	session.SetViewport(float64(cfg.C.Width), float64(cfg.C.Height))

	events.PointerMoved.ProcessEvents(ecs.World)

	before := session.State()
	session.Tick(GetOrCreateClock(ecs).Now)
	if cfg.Debug.ShowHUD && before != session.State() {
		log.Printf("[trail] dropped after %s idle", cfg.Trail.DropDelay)
	}
}

func trailSession(w donburi.World) (*trail.Session, bool) {
	entry, ok := components.Trail.First(w)
	if !ok {
		return nil, false
	}
	return components.Trail.Get(entry).Session, true
}

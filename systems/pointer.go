package systems

import (
	"github.com/automoto/trailstack/components"
	cfg "github.com/automoto/trailstack/config"
	"github.com/automoto/trailstack/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePointer publishes a PointerMoved event whenever the pointer position
// changes. The first position read only primes the tracker, so a cursor that
// merely rests in the window at startup does not count as movement.
func UpdatePointer(ecs *ecs.ECS) {
	x, y, ok := pointerPosition()
	if !ok {
		return
	}

	pointer := getOrCreatePointer(ecs)
	if !pointer.Seen {
		pointer.X, pointer.Y, pointer.Seen = x, y, true
		return
	}
	if x == pointer.X && y == pointer.Y {
		return
	}
	pointer.X, pointer.Y = x, y

	events.PointerMoved.Publish(ecs.World, events.PointerMovedEvent{
		X:    x,
		Y:    y,
		Time: GetOrCreateClock(ecs).Now,
	})
}

// pointerPosition prefers the first active touch, then the mouse cursor while
// it is inside the window.
func pointerPosition() (float64, float64, bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return float64(x), float64(y), true
	}

	if !ebiten.IsFocused() {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= cfg.C.Width || y >= cfg.C.Height {
		return 0, 0, false
	}
	return float64(x), float64(y), true
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

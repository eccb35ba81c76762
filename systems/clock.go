package systems

import (
	"time"

	"github.com/automoto/trailstack/components"
	"github.com/yohamta/donburi/ecs"
)

// Now is the wall clock read once per frame. Replaced in tests.
var Now = time.Now

// maxFrameDelta caps the step after a stall (window drag, breakpoint) so
// tweens resume smoothly instead of jumping to their end.
const maxFrameDelta = 100 * time.Millisecond

// UpdateClock samples the wall clock. Must run before any system that reads it.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	now := Now()

	if clock.Ticks > 0 {
		clock.Delta = now.Sub(clock.Now)
		if clock.Delta > maxFrameDelta {
			clock.Delta = maxFrameDelta
		}
		if clock.Delta < 0 {
			clock.Delta = 0
		}
	}
	clock.Now = now
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

package systems

import (
	"github.com/automoto/trailstack/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every Tween component by the frame delta.
func UpdateTweens(ecs *ecs.ECS) {
	dt := float32(GetOrCreateClock(ecs).Delta.Seconds())
	for e := range components.Tween.Iter(ecs.World) {
		components.Tween.Get(e).Update(dt)
	}
}

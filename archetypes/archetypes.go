package archetypes

import (
	"github.com/automoto/trailstack/components"
	"github.com/automoto/trailstack/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	TrailImage = newArchetype(
		tags.TrailImage,
		components.TrailImage,
		components.Tween,
	)
	Trail = newArchetype(
		tags.Trail,
		components.Trail,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}

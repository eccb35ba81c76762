package factory

import (
	"math/rand/v2"

	"github.com/automoto/trailstack/archetypes"
	"github.com/automoto/trailstack/components"
	"github.com/automoto/trailstack/trail"
	"github.com/automoto/trailstack/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrailImage spawns one image of the stack at ordinal index.
func CreateTrailImage(ecs *ecs.ECS, index int, img *ebiten.Image) *donburi.Entry {
	entry := archetypes.TrailImage.Spawn(ecs)
	components.TrailImage.SetValue(entry, components.TrailImageData{
		Index: index,
		Image: img,
	})
	components.Tween.SetValue(entry, components.TweenData{
		Tweener: tween.NewTweener(tween.Values{tween.Scale: 1, tween.Opacity: 1}),
	})
	return entry
}

// CreateTrail spawns the image stack and the session that drives it. The set
// of images is fixed from here on.
func CreateTrail(ecs *ecs.ECS, images []*ebiten.Image, cfg trail.Config, rng *rand.Rand) *donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(images))
	for i, img := range images {
		entries = append(entries, CreateTrailImage(ecs, i, img))
	}

	session := trail.NewSession(cfg, NewEntryAnimator(entries), rng)
	session.Init()

	entry := archetypes.Trail.Spawn(ecs)
	components.Trail.SetValue(entry, components.TrailData{Session: session})
	return entry
}

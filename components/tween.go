package components

import (
	"github.com/automoto/trailstack/tween"
	"github.com/yohamta/donburi"
)

// TweenData carries the animated transform of an entity
type TweenData struct {
	*tween.Tweener
}

var Tween = donburi.NewComponentType[TweenData]()

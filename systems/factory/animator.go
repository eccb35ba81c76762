package factory

import (
	"github.com/automoto/trailstack/components"
	"github.com/automoto/trailstack/tween"
	"github.com/yohamta/donburi"
)

// EntryAnimator drives trail image entities through their Tween component.
type EntryAnimator struct {
	entries []*donburi.Entry
}

// NewEntryAnimator addresses entries by their position in the slice.
func NewEntryAnimator(entries []*donburi.Entry) *EntryAnimator {
	return &EntryAnimator{entries: entries}
}

func (a *EntryAnimator) Count() int {
	return len(a.entries)
}

func (a *EntryAnimator) SetZIndex(index, z int) {
	components.TrailImage.Get(a.entries[index]).ZIndex = z
}

func (a *EntryAnimator) Set(index int, props tween.Props) {
	components.Tween.Get(a.entries[index]).Set(props)
}

func (a *EntryAnimator) To(index int, props tween.Props, opts tween.Options) {
	components.Tween.Get(a.entries[index]).To(props, opts)
}

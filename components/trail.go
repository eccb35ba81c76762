package components

import (
	"github.com/automoto/trailstack/trail"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TrailImageData is one image in the trailing stack
type TrailImageData struct {
	Index  int // Ordinal used by the trail session
	Image  *ebiten.Image
	ZIndex int // Higher draws on top
}

var TrailImage = donburi.NewComponentType[TrailImageData]()

// TrailData owns the trail session shared by the pointer handler and the frame tick
type TrailData struct {
	Session *trail.Session
}

var Trail = donburi.NewComponentType[TrailData]()

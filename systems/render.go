package systems

import (
	"math"
	"sort"

	"github.com/automoto/trailstack/components"
	"github.com/automoto/trailstack/tags"
	"github.com/automoto/trailstack/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	drawQueue []*donburi.Entry
)

// DrawTrail renders trail images back to front by z-index. Equal z-indices
// keep ordinal order, so later images land on top.
func DrawTrail(ecs *ecs.ECS, screen *ebiten.Image) {
	drawQueue = drawQueue[:0]
	tags.TrailImage.Each(ecs.World, func(e *donburi.Entry) {
		drawQueue = append(drawQueue, e)
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		a := components.TrailImage.Get(drawQueue[i])
		b := components.TrailImage.Get(drawQueue[j])
		if a.ZIndex != b.ZIndex {
			return a.ZIndex < b.ZIndex
		}
		return a.Index < b.Index
	})

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, e := range drawQueue {
		img := components.TrailImage.Get(e).Image
		if img == nil {
			continue
		}
		v := components.Tween.Get(e).Values()

		opacity := v[tween.Opacity]
		if opacity <= 0 {
			continue
		}
		if opacity > 1 {
			opacity = 1
		}

		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		scale := v[tween.Scale]

		// Viewport culling with the scaled diagonal as padding so rotated
		// sprites never pop at the edges.
		pad := math.Hypot(w, h) * math.Abs(scale) / 2
		x, y := v[tween.X], v[tween.Y]
		if x+pad < 0 || x-pad > width || y+pad < 0 || y-pad > height {
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterLinear

		// Centre the image on its position, then scale and rotate around it.
		drawOp.GeoM.Translate(-w/2, -h/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Rotate(v[tween.Rotation] * math.Pi / 180)
		drawOp.GeoM.Translate(x, y)
		drawOp.ColorScale.ScaleAlpha(float32(opacity))

		screen.DrawImage(img, drawOp)
	}
}
